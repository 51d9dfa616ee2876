package vehiculo

import (
	"context"

	"tallervehicular/internal/domain"
)

type VehiculoRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Vehiculo, error)
	ListByCliente(ctx context.Context, clienteID int64) ([]domain.Vehiculo, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error)
	GetByPlaca(ctx context.Context, placa string) (*domain.Vehiculo, error)
	Search(ctx context.Context, q string) ([]domain.Vehiculo, error)
	ExistsPlaca(ctx context.Context, placa string, excludeID int64) (bool, error)
	Create(ctx context.Context, vehiculo *domain.Vehiculo) error
	Update(ctx context.Context, vehiculo *domain.Vehiculo) error
	Delete(ctx context.Context, id int64) error
}
