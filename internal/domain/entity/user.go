package entity

import "time"

// Roles válidos para User. Admin habilita las superficies de operador
// (diagnóstico); member es el rol por defecto en el registro.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, member
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
