package repository

import "github.com/jhoicas/Documental-api/internal/domain/entity"

// ProductionRepository define el puerto de persistencia para Production.
// Todas las lecturas están acotadas por company: no hay consultas sin scope.
type ProductionRepository interface {
	Create(production *entity.Production) error
	// GetByIDAndCompany devuelve (nil, nil) si la producción no existe o
	// pertenece a otra empresa; el caller lo trata como no-encontrado.
	GetByIDAndCompany(id, companyID string) (*entity.Production, error)
	ListByCompany(companyID string) ([]*entity.Production, error)
}
