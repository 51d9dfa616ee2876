package auth

import "tallervehicular/internal/domain"

type LoginRequest struct {
	Usuario  string `json:"usuario" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is flat: the web client persists the parsed body as the
// session verbatim.
type LoginResponse struct {
	ID       int64             `json:"id"`
	Username string            `json:"username"`
	Email    string            `json:"email"`
	Nombre   string            `json:"nombre"`
	Role     domain.RolUsuario `json:"role"`
	Token    string            `json:"token"`
}

type RegistroRequest struct {
	Username string            `json:"username" binding:"required,min=3"`
	Email    string            `json:"email" binding:"required,email"`
	Password string            `json:"password" binding:"required,min=8"`
	Nombre   string            `json:"nombre" binding:"required"`
	Role     domain.RolUsuario `json:"role" binding:"required"`
}

type RecuperacionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RestablecerRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
