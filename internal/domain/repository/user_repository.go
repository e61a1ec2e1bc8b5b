package repository

import "github.com/jhoicas/Documental-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Ningún caso de uso escribe users fuera de este puerto.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername devuelve (nil, nil) si no existe: el caso de uso de login
	// decide el error para no filtrar existencia de cuentas.
	GetByUsername(username string) (*entity.User, error)
}
