package entity

import "time"

// Production representa un proyecto/espacio de trabajo que agrupa documentos.
// Pertenece a exactamente una Company; CompanyID es inmutable una vez creada.
type Production struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
