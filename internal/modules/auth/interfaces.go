package auth

import (
	"context"

	"tallervehicular/internal/domain"
)

type UsuarioRepositoryInterface interface {
	Create(ctx context.Context, u *domain.Usuario) error
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)
	GetByUsernameOrEmail(ctx context.Context, identificador string) (*domain.Usuario, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]domain.Usuario, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type RecuperacionRepositoryInterface interface {
	Create(ctx context.Context, t *domain.TokenRecuperacion) error
	GetValidByHash(ctx context.Context, hash string) (*domain.TokenRecuperacion, error)
	MarkUsed(ctx context.Context, id int64) error
	InvalidateForUser(ctx context.Context, userID int64) error
}
