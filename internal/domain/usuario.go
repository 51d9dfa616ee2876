package domain

import "time"

type RolUsuario string

const (
	RolAdmin   RolUsuario = "ADMIN"
	RolTecnico RolUsuario = "TECNICO"
	RolAlmacen RolUsuario = "ALMACEN"
)

func (r RolUsuario) Valido() bool {
	switch r {
	case RolAdmin, RolTecnico, RolAlmacen:
		return true
	}
	return false
}

type Usuario struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username" gorm:"uniqueIndex"`
	Email        string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Nombre       string     `json:"nombre"`
	Rol          RolUsuario `json:"role" gorm:"column:role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Usuario) TableName() string { return "usuarios" }

// TokenRecuperacion is a single-use password recovery token. Only the
// sha256 hash of the token material is stored.
type TokenRecuperacion struct {
	ID        int64      `json:"id"`
	UsuarioID int64      `json:"usuario_id" gorm:"index"`
	TokenHash string     `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (TokenRecuperacion) TableName() string { return "tokens_recuperacion" }
