package reporte

import (
	"context"
	"time"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/modules/mantenimiento"
)

type OrdenReader interface {
	List(ctx context.Context) ([]domain.Orden, error)
	ListByVehiculo(ctx context.Context, vehiculoID int64) ([]domain.Orden, error)
	ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]domain.Orden, error)
}

type VehiculoReader interface {
	List(ctx context.Context) ([]domain.Vehiculo, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error)
}

type ClienteReader interface {
	List(ctx context.Context) ([]domain.Cliente, error)
}

type ServicioReader interface {
	List(ctx context.Context) ([]domain.Servicio, error)
}

type RepuestoReader interface {
	List(ctx context.Context) ([]domain.Repuesto, error)
	ListBajoStock(ctx context.Context) ([]domain.Repuesto, error)
	ListMovimientos(ctx context.Context, repuestoID int64) ([]domain.Movimiento, error)
}

// EstadoFlota feeds the due-status rows for the preventive report.
type EstadoFlota interface {
	Proximos(ctx context.Context) ([]mantenimiento.EstadoVehiculo, error)
}
