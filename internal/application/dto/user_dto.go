package dto

import "time"

// RegisterRequest alta de usuario.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más los campos de identidad que el frontend
// cachea en sesión para renderizar UI condicional.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// RegisterResponse respuesta de alta: token y usuario creado.
type RegisterResponse struct {
	Token   string       `json:"token"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ProtectRequest verificación explícita de un token emitido.
type ProtectRequest struct {
	Token string `json:"token"`
}

// ClaimsResponse claims decodificados de un token válido.
type ClaimsResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserResponse representación pública de un usuario. Nunca incluye el hash.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// UpdateRoleRequest cambio de rol (solo admin).
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateStatusRequest cambio de estado (solo admin).
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
