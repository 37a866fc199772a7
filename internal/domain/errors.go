package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Nombres de planta: cName y sName son únicos por separado.
	ErrCommonNameTaken     = errors.New("ya existe una planta con ese nombre común")
	ErrScientificNameTaken = errors.New("ya existe una planta con ese nombre científico")

	// Favoritos: el toggle no es idempotente hacia el cliente.
	ErrAlreadyFavorited  = errors.New("el favorito ya existe")
	ErrFavoriteNotFound  = errors.New("el favorito no existe para eliminar")
)
