package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/domain/repository"
)

// DiagnosticsHandler maneja los endpoints de diagnóstico: sondeo de DB y
// estado de tablas para operadores.
type DiagnosticsHandler struct {
	repo repository.DiagnosticsRepository
}

// NewDiagnosticsHandler construye el handler de diagnóstico.
func NewDiagnosticsHandler(repo repository.DiagnosticsRepository) *DiagnosticsHandler {
	return &DiagnosticsHandler{repo: repo}
}

// DBProbe godoc
// @Summary      Sondeo de la base de datos (hora actual del servidor)
// @Tags         diagnostics
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /db [get]
func (h *DiagnosticsHandler) DBProbe(c *fiber.Ctx) error {
	now, err := h.repo.ServerTime()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DB_ERROR", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"server_time": now})
}

// Status godoc
// @Summary      Conteos por tabla (solo operadores con role admin)
// @Tags         diagnostics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /status [get]
func (h *DiagnosticsHandler) Status(c *fiber.Ctx) error {
	counts, err := h.repo.TableCounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DB_ERROR", Message: err.Error()})
	}
	return c.JSON(counts)
}
