package orden

import (
	"context"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/repository"
)

type OrdenRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Orden, error)
	GetByID(ctx context.Context, id int64) (*domain.Orden, error)
	ListByVehiculo(ctx context.Context, vehiculoID int64) ([]domain.Orden, error)
	NextNumero(ctx context.Context, year int) (string, error)
	Create(ctx context.Context, orden *domain.Orden, usuarioID *int64) error
	Update(ctx context.Context, orden *domain.Orden) error
	Delete(ctx context.Context, id int64) error
	AgregarServicio(ctx context.Context, linea *domain.OrdenServicio) error
	AgregarRepuesto(ctx context.Context, numero string, linea *domain.OrdenRepuesto, usuarioID *int64) error
	Estadisticas(ctx context.Context) (*repository.EstadisticasOrdenes, error)
}

type VehiculoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error)
}

type RepuestoReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Repuesto, error)
}

// ProgramadorMantenimiento schedules the follow-up plan write when a
// preventive order completes.
type ProgramadorMantenimiento interface {
	CompletarPorOrden(ctx context.Context, orden *domain.Orden) error
}
