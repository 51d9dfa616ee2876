package repuesto

import (
	"context"

	"tallervehicular/internal/domain"
)

type RepuestoRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Repuesto, error)
	ListActivos(ctx context.Context) ([]domain.Repuesto, error)
	ListBajoStock(ctx context.Context) ([]domain.Repuesto, error)
	GetByID(ctx context.Context, id int64) (*domain.Repuesto, error)
	ExistsCodigo(ctx context.Context, codigo string, excludeID int64) (bool, error)
	Create(ctx context.Context, repuesto *domain.Repuesto) error
	Update(ctx context.Context, repuesto *domain.Repuesto) error
	Delete(ctx context.Context, id int64) error
	RegistrarMovimiento(ctx context.Context, mov *domain.Movimiento) error
	ListMovimientos(ctx context.Context, repuestoID int64) ([]domain.Movimiento, error)
}
