package http

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Documental-api/internal/application/document"
	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/domain"
)

// DocumentHandler maneja subida, descarga y listado de documentos.
type DocumentHandler struct {
	uc *document.DocumentUseCase
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *document.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// List godoc
// @Summary      Listar documentos de la empresa del caller
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.DocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DB_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upload godoc
// @Summary      Subir un archivo a una producción
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file           formData  file    true   "archivo a subir"
// @Param        production_id  formData  string  true   "producción destino"
// @Param        version        formData  string  false  "etiqueta de versión"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart 'file' requerido"})
	}
	productionID := c.FormValue("production_id")
	if productionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "production_id es requerido"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	out, err := h.uc.Upload(c.UserContext(), GetCompanyID(c), document.UploadInput{
		ProductionID: productionID,
		Version:      c.FormValue("version"),
		FileName:     fileHeader.Filename,
		ContentType:  contentTypeOf(fileHeader),
		Content:      f,
		Size:         fileHeader.Size,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCTION_NOT_FOUND", Message: "la producción no existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo o producción inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar un documento por id
// @Tags         documents
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id   path  string  true  "id del documento"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /download/{id} [get]
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	// Documento inexistente o de otro tenant: ambos son 404, sin distinguir.
	res, err := h.uc.Download(c.UserContext(), GetCompanyID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORAGE_ERROR", Message: err.Error()})
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, res.FileName))
	// SendStream pasa los bytes directo a la respuesta, sin materializar el
	// archivo en memoria; Fiber cierra el reader al terminar.
	if res.SizeBytes > 0 {
		return c.SendStream(res.Content, int(res.SizeBytes))
	}
	return c.SendStream(res.Content)
}

func contentTypeOf(fh *multipart.FileHeader) string {
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
