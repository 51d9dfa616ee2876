package cliente

import (
	"context"

	"tallervehicular/internal/domain"
)

type ClienteRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Cliente, error)
	GetByID(ctx context.Context, id int64) (*domain.Cliente, error)
	GetByDocumento(ctx context.Context, numero string) (*domain.Cliente, error)
	GetByRUC(ctx context.Context, ruc string) (*domain.Cliente, error)
	Search(ctx context.Context, q string) ([]domain.Cliente, error)
	ExistsDocumento(ctx context.Context, numero string, excludeID int64) (bool, error)
	Create(ctx context.Context, cliente *domain.Cliente) error
	Update(ctx context.Context, cliente *domain.Cliente) error
	Delete(ctx context.Context, id int64) error
}

// PadronLookup consults the national taxpayer and identity registries.
type PadronLookup interface {
	ConsultarRUC(ctx context.Context, ruc string) (*PadronRUC, error)
	ConsultarDNI(ctx context.Context, dni string) (*PadronDNI, error)
}
