package auth

import "errors"

var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioExiste         = errors.New("el usuario o email ya está registrado")
	ErrRolInvalido           = errors.New("rol de usuario inválido")
	ErrTokenInvalido         = errors.New("token de recuperación inválido o expirado")
)
