package document

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/domain"
	"github.com/jhoicas/Documental-api/internal/domain/entity"
	"github.com/jhoicas/Documental-api/internal/domain/repository"
	"github.com/jhoicas/Documental-api/internal/domain/storage"
	"github.com/jhoicas/Documental-api/pkg/logger"
)

// UploadInput datos de una subida: metadatos del form más el stream del archivo.
type UploadInput struct {
	ProductionID string
	Version      string
	FileName     string
	ContentType  string
	Content      io.Reader
	Size         int64 // -1 si se desconoce
}

// DownloadResult stream de descarga con los metadatos para los headers HTTP.
// El caller es dueño de Content y debe cerrarlo.
type DownloadResult struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.ReadCloser
}

// DocumentUseCase orquesta el ciclo de vida de documentos: subida
// (blob primero, metadatos después), descarga (metadatos acotados por tenant,
// luego stream del blob) y listado acotado por company.
type DocumentUseCase struct {
	docRepo  repository.DocumentRepository
	prodRepo repository.ProductionRepository
	blobs    storage.BlobStore
	log      *logger.Logger
}

// NewDocumentUseCase construye el caso de uso de documentos.
func NewDocumentUseCase(docRepo repository.DocumentRepository, prodRepo repository.ProductionRepository, blobs storage.BlobStore, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{docRepo: docRepo, prodRepo: prodRepo, blobs: blobs, log: log}
}

// blobKey construye la clave del objeto: uploads/{unix-ms}_{nombre original}.
// Dos subidas con el mismo nombre en el mismo milisegundo colisionarían; el
// componente temporal lo hace improbable en la práctica, no imposible.
func blobKey(fileName string, now time.Time) string {
	return fmt.Sprintf("uploads/%d_%s", now.UnixMilli(), filepath.Base(fileName))
}

// Upload sube un archivo: verifica que la producción pertenezca a la company
// del claim, escribe los bytes al blob store y luego inserta la fila de
// metadatos referenciando la clave. No es transaccional entre los dos stores:
// si el insert falla después del put, el blob queda huérfano (se loguea, no se
// enmascara).
func (uc *DocumentUseCase) Upload(ctx context.Context, companyID string, in UploadInput) (*dto.UploadResponse, error) {
	if in.FileName == "" || in.ProductionID == "" {
		return nil, domain.ErrInvalidInput
	}
	prod, err := uc.prodRepo.GetByIDAndCompany(in.ProductionID, companyID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound // producción inexistente o de otro tenant
	}

	key := blobKey(in.FileName, time.Now())
	info, err := uc.blobs.Put(ctx, key, in.Content, in.Size, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("escribir blob: %w", err)
	}

	doc := &entity.Document{
		ID:           uuid.New().String(),
		ProductionID: in.ProductionID,
		FileName:     filepath.Base(in.FileName),
		BlobKey:      key,
		Version:      in.Version,
		SizeBytes:    info.SizeBytes,
		ContentType:  in.ContentType,
		CreatedAt:    time.Now(),
	}
	if err := uc.docRepo.Create(doc); err != nil {
		// Ventana conocida: el blob ya existe y la fila no. No hay coordinador
		// de transacción distribuida; queda huérfano para limpieza manual.
		uc.log.Error().Err(err).Str("blob_key", key).Msg("insert de metadatos falló después de escribir el blob; objeto huérfano")
		return nil, fmt.Errorf("insertar metadatos: %w", err)
	}

	return &dto.UploadResponse{
		ID:       doc.ID,
		Location: key,
		Message:  "archivo subido correctamente",
	}, nil
}

// Download resuelve los metadatos por id acotado a la company del claim y
// devuelve el stream del blob. Documento inexistente o de otro tenant se
// responde igual: ErrNotFound. El stream va atado a ctx: si el cliente se
// desconecta, la lectura contra storage se cancela.
func (uc *DocumentUseCase) Download(ctx context.Context, companyID, documentID string) (*DownloadResult, error) {
	doc, err := uc.docRepo.GetByIDAndCompany(documentID, companyID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	content, info, err := uc.blobs.Get(ctx, doc.BlobKey)
	if err != nil {
		return nil, err
	}
	size := doc.SizeBytes
	if size <= 0 {
		size = info.SizeBytes
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = info.ContentType
	}
	return &DownloadResult{
		FileName:    doc.FileName,
		ContentType: contentType,
		SizeBytes:   size,
		Content:     content,
	}, nil
}

// List devuelve los documentos visibles para la company del claim, con
// nombres de producción y empresa desnormalizados para display.
func (uc *DocumentUseCase) List(companyID string) ([]dto.DocumentResponse, error) {
	docs, err := uc.docRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.DocumentResponse{
			ID:             d.ID,
			ProductionID:   d.ProductionID,
			ProductionName: d.ProductionName,
			CompanyName:    d.CompanyName,
			FileName:       d.FileName,
			Version:        d.Version,
			SizeBytes:      d.SizeBytes,
			ContentType:    d.ContentType,
			CreatedAt:      d.CreatedAt,
		})
	}
	return out, nil
}
