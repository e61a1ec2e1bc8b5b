package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa (tenant).
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
