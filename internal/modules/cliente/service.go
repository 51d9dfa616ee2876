package cliente

import (
	"context"
	"strings"

	"tallervehicular/internal/domain"
)

type Service struct {
	clientes ClienteRepositoryInterface
	padron   PadronLookup
}

func NewService(clientes ClienteRepositoryInterface, padron PadronLookup) *Service {
	return &Service{clientes: clientes, padron: padron}
}

func (s *Service) Listar(ctx context.Context) ([]domain.Cliente, error) {
	return s.clientes.List(ctx)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*domain.Cliente, error) {
	return s.clientes.GetByID(ctx, id)
}

func (s *Service) ObtenerPorDocumento(ctx context.Context, numero string) (*domain.Cliente, error) {
	return s.clientes.GetByDocumento(ctx, strings.TrimSpace(numero))
}

func (s *Service) ObtenerPorRUC(ctx context.Context, ruc string) (*domain.Cliente, error) {
	return s.clientes.GetByRUC(ctx, strings.TrimSpace(ruc))
}

func (s *Service) Buscar(ctx context.Context, q string) ([]domain.Cliente, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.clientes.List(ctx)
	}
	return s.clientes.Search(ctx, q)
}

func (s *Service) Crear(ctx context.Context, req ClienteRequest) (*domain.Cliente, error) {
	cliente := req.aDominio()
	if err := cliente.Normalizar(); err != nil {
		return nil, err
	}

	exists, err := s.clientes.ExistsDocumento(ctx, cliente.NumeroDocumento, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDocumentoDuplicado
	}

	if err := s.clientes.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *Service) Actualizar(ctx context.Context, id int64, req ClienteRequest) (*domain.Cliente, error) {
	existente, err := s.clientes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cliente := req.aDominio()
	cliente.ID = existente.ID
	cliente.CreatedAt = existente.CreatedAt
	if err := cliente.Normalizar(); err != nil {
		return nil, err
	}

	duplicado, err := s.clientes.ExistsDocumento(ctx, cliente.NumeroDocumento, id)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, ErrDocumentoDuplicado
	}

	if err := s.clientes.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.clientes.Delete(ctx, id)
}

func (s *Service) ConsultarRUCExterno(ctx context.Context, ruc string) (*PadronRUC, error) {
	return s.padron.ConsultarRUC(ctx, strings.TrimSpace(ruc))
}

func (s *Service) ConsultarDNIExterno(ctx context.Context, dni string) (*PadronDNI, error) {
	return s.padron.ConsultarDNI(ctx, strings.TrimSpace(dni))
}
