// Package authz concentra las reglas de autorización de mutaciones:
// propietario-o-admin para reseñas y comentarios, solo-admin para el catálogo
// y la protección de la cuenta de administrador principal. Todas las rutas
// mutantes pasan por aquí para evitar que cada handler repita la comparación
// de roles por su cuenta.
package authz

import (
	"github.com/jstringer1212/plant-review-api/internal/domain"
	"github.com/jstringer1212/plant-review-api/internal/domain/entity"
)

// Role enum cerrado de roles. Cualquier string fuera del enum parsea a RoleUnknown.
type Role int

const (
	RoleUnknown Role = iota
	RoleUser
	RoleAdmin
)

// ParseRole convierte el claim de rol del token al enum.
func ParseRole(s string) Role {
	switch s {
	case entity.RoleAdmin:
		return RoleAdmin
	case entity.RoleUser:
		return RoleUser
	default:
		return RoleUnknown
	}
}

// String devuelve la representación persistida del rol.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return entity.RoleAdmin
	case RoleUser:
		return entity.RoleUser
	default:
		return ""
	}
}

// Actor identidad que ejecuta una operación, derivada del token verificado.
// Nunca se construye a partir de campos del body.
type Actor struct {
	UserID string
	Role   Role
}

// IsAdmin indica si el actor tiene privilegios de administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Guard aplica las reglas de autorización. LeadAdminID viene de configuración
// y protege a la cuenta principal de cambios de rol/estado.
type Guard struct {
	leadAdminID string
}

// NewGuard construye el guard con el ID del administrador principal (puede ser vacío).
func NewGuard(leadAdminID string) *Guard {
	return &Guard{leadAdminID: leadAdminID}
}

// CanMutate decide si el actor puede mutar un recurso cuyo dueño es ownerID:
// permitido si es el dueño o si es admin. El recurso debe haberse localizado
// por PK antes de llamar aquí; un recurso inexistente es ErrNotFound, no
// ErrForbidden.
func (g *Guard) CanMutate(actor Actor, ownerID string) error {
	if actor.UserID == ownerID || actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// RequireAdmin exige rol admin (mutación del catálogo, gestión de usuarios).
func (g *Guard) RequireAdmin(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return domain.ErrForbidden
}

// CheckLeadAdmin rechaza operaciones de cambio de rol/estado dirigidas a la
// cuenta de administrador principal, sin importar el privilegio del llamador.
// Regla de negocio fija, no un permiso en datos.
func (g *Guard) CheckLeadAdmin(targetID string) error {
	if g.leadAdminID != "" && targetID == g.leadAdminID {
		return domain.ErrForbidden
	}
	return nil
}
