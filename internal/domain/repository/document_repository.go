package repository

import "github.com/jhoicas/Documental-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document.
// El catálogo expone solo operaciones acotadas por tenant: listados vía join
// documents→productions→companies y lookup por id re-verificado contra la
// company del caller, de modo que un id adivinado de otro tenant se lee como
// no-encontrado.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	// GetByIDAndCompany devuelve (nil, nil) si el documento no existe o su
	// producción pertenece a otra empresa.
	GetByIDAndCompany(id, companyID string) (*entity.Document, error)
	ListByCompany(companyID string) ([]*entity.DocumentWithContext, error)
}
