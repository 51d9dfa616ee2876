package servicio

import (
	"context"
	"errors"

	"tallervehicular/internal/domain"
)

var ErrCodigoDuplicado = errors.New("ya existe un servicio con ese código")

type ServicioRepositoryInterface interface {
	List(ctx context.Context) ([]domain.Servicio, error)
	ListActivos(ctx context.Context) ([]domain.Servicio, error)
	GetByID(ctx context.Context, id int64) (*domain.Servicio, error)
	ExistsCodigo(ctx context.Context, codigo string, excludeID int64) (bool, error)
	Create(ctx context.Context, servicio *domain.Servicio) error
	Update(ctx context.Context, servicio *domain.Servicio) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	servicios ServicioRepositoryInterface
}

func NewService(servicios ServicioRepositoryInterface) *Service {
	return &Service{servicios: servicios}
}

func (s *Service) Listar(ctx context.Context) ([]domain.Servicio, error) {
	return s.servicios.List(ctx)
}

func (s *Service) ListarActivos(ctx context.Context) ([]domain.Servicio, error) {
	return s.servicios.ListActivos(ctx)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*domain.Servicio, error) {
	return s.servicios.GetByID(ctx, id)
}

func (s *Service) Crear(ctx context.Context, req ServicioRequest) (*domain.Servicio, error) {
	servicio := req.aDominio()

	exists, err := s.servicios.ExistsCodigo(ctx, servicio.Codigo, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodigoDuplicado
	}

	if err := s.servicios.Create(ctx, servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

func (s *Service) Actualizar(ctx context.Context, id int64, req ServicioRequest) (*domain.Servicio, error) {
	existente, err := s.servicios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	servicio := req.aDominio()
	servicio.ID = existente.ID
	servicio.CreatedAt = existente.CreatedAt

	duplicado, err := s.servicios.ExistsCodigo(ctx, servicio.Codigo, id)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, ErrCodigoDuplicado
	}

	if err := s.servicios.Update(ctx, servicio); err != nil {
		return nil, err
	}
	return servicio, nil
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.servicios.Delete(ctx, id)
}
