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

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementación del puerto ProductionRepository sobre PostgreSQL.
type ProductionRepo struct {
	pool *pgxpool.Pool
}

// NewProductionRepository construye el adaptador de persistencia para producciones.
func NewProductionRepository(pool *pgxpool.Pool) *ProductionRepo {
	return &ProductionRepo{pool: pool}
}

// Create persiste una nueva producción.
func (r *ProductionRepo) Create(production *entity.Production) error {
	query := `
		INSERT INTO productions (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		production.ID, production.CompanyID, production.Name,
		production.CreatedAt, production.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene una producción por ID acotada a una empresa.
// (nil, nil) si no existe o pertenece a otro tenant: mismo resultado para ambos.
func (r *ProductionRepo) GetByIDAndCompany(id, companyID string) (*entity.Production, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM productions WHERE id = $1 AND company_id = $2`
	var p entity.Production
	err := r.pool.QueryRow(context.Background(), query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// ListByCompany lista las producciones de una empresa.
func (r *ProductionRepo) ListByCompany(companyID string) ([]*entity.Production, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM productions WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
