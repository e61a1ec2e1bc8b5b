package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Documental-api/internal/domain/entity"
	"github.com/jhoicas/Documental-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre PostgreSQL.
// Todas las lecturas pasan por el join documents→productions para re-verificar
// el tenant; no hay lookup sin scope.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Create persiste la fila de metadatos de un documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, production_id, file_name, blob_key, version, size_bytes, content_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		doc.ID, doc.ProductionID, doc.FileName, doc.BlobKey, doc.Version,
		doc.SizeBytes, doc.ContentType, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un documento por ID re-verificando vía su
// producción que pertenece a la empresa dada. (nil, nil) tanto si no existe
// como si es de otro tenant: un id adivinado no distingue los casos.
func (r *DocumentRepo) GetByIDAndCompany(id, companyID string) (*entity.Document, error) {
	query := `
		SELECT d.id, d.production_id, d.file_name, d.blob_key, d.version, d.size_bytes, d.content_type, d.created_at
		FROM documents d
		JOIN productions p ON p.id = d.production_id
		WHERE d.id = $1 AND p.company_id = $2`
	var d entity.Document
	err := r.pool.QueryRow(context.Background(), query, id, companyID).Scan(
		&d.ID, &d.ProductionID, &d.FileName, &d.BlobKey, &d.Version,
		&d.SizeBytes, &d.ContentType, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByCompany lista los documentos de una empresa con nombres de producción
// y empresa desnormalizados (join documents→productions→companies).
func (r *DocumentRepo) ListByCompany(companyID string) ([]*entity.DocumentWithContext, error) {
	query := `
		SELECT d.id, d.production_id, d.file_name, d.blob_key, d.version, d.size_bytes, d.content_type, d.created_at,
		       p.name AS production_name, c.name AS company_name
		FROM documents d
		JOIN productions p ON p.id = d.production_id
		JOIN companies c ON c.id = p.company_id
		WHERE p.company_id = $1
		ORDER BY d.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentWithContext
	for rows.Next() {
		var d entity.DocumentWithContext
		if err := rows.Scan(
			&d.ID, &d.ProductionID, &d.FileName, &d.BlobKey, &d.Version,
			&d.SizeBytes, &d.ContentType, &d.CreatedAt,
			&d.ProductionName, &d.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
