package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/application/usecase"
)

// ProductionHandler maneja las peticiones HTTP para el recurso Production.
type ProductionHandler struct {
	uc *usecase.ProductionUseCase
}

// NewProductionHandler construye el handler inyectando el caso de uso.
func NewProductionHandler(uc *usecase.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producción en la empresa del caller
// @Tags         productions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProductionRequest  true  "Datos de la producción"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /productions [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetCompanyID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar producciones de la empresa del caller
// @Tags         productions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ProductionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /productions [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DB_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
