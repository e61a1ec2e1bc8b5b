package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrInvalidCredentials cubre usuario inexistente y password incorrecto con
	// el mismo error, para no filtrar existencia de cuentas en login.
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
)
