package dto

import "time"

// CreateProductionRequest entrada para crear una producción. La company sale
// del claim autenticado, nunca del body.
type CreateProductionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ProductionResponse salida de una producción.
type ProductionResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
