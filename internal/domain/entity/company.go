package entity

import "time"

// Company representa una organización/tenant del sistema. Todo el particionado
// de datos (usuarios, producciones, documentos) resuelve a un CompanyID.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
