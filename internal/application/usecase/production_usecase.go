package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Documental-api/internal/application/dto"
	"github.com/jhoicas/Documental-api/internal/domain/entity"
	"github.com/jhoicas/Documental-api/internal/domain/repository"
)

// ProductionUseCase casos de uso para producciones (proyectos de una empresa).
type ProductionUseCase struct {
	repo repository.ProductionRepository
}

// NewProductionUseCase construye el caso de uso de producciones.
func NewProductionUseCase(repo repository.ProductionRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo}
}

// Create crea una producción dentro de la company del claim autenticado.
// CompanyID sale del token, nunca del body: no se puede crear en otro tenant.
func (uc *ProductionUseCase) Create(companyID string, in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	now := time.Now()
	prod := &entity.Production{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(prod); err != nil {
		return nil, err
	}
	return toProductionResponse(prod), nil
}

// ListByCompany lista las producciones de la company del claim.
func (uc *ProductionUseCase) ListByCompany(companyID string) ([]dto.ProductionResponse, error) {
	prods, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionResponse, 0, len(prods))
	for _, p := range prods {
		out = append(out, *toProductionResponse(p))
	}
	return out, nil
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
