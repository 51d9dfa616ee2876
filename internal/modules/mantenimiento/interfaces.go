package mantenimiento

import (
	"context"

	"tallervehicular/internal/domain"
)

type MantenimientoRepositoryInterface interface {
	GetByVehiculo(ctx context.Context, vehiculoID int64) (*domain.PlanMantenimiento, error)
	Upsert(ctx context.Context, plan *domain.PlanMantenimiento) error
	List(ctx context.Context) ([]domain.PlanMantenimiento, error)
}

type VehiculoReader interface {
	List(ctx context.Context) ([]domain.Vehiculo, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error)
}

type OrdenReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Orden, error)
}
