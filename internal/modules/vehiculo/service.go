package vehiculo

import (
	"context"
	"strings"

	"tallervehicular/internal/domain"
)

type Service struct {
	vehiculos VehiculoRepositoryInterface
}

func NewService(vehiculos VehiculoRepositoryInterface) *Service {
	return &Service{vehiculos: vehiculos}
}

func (s *Service) Listar(ctx context.Context) ([]domain.Vehiculo, error) {
	return s.vehiculos.List(ctx)
}

func (s *Service) ListarPorCliente(ctx context.Context, clienteID int64) ([]domain.Vehiculo, error) {
	return s.vehiculos.ListByCliente(ctx, clienteID)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*domain.Vehiculo, error) {
	return s.vehiculos.GetByID(ctx, id)
}

func (s *Service) ObtenerPorPlaca(ctx context.Context, placa string) (*domain.Vehiculo, error) {
	return s.vehiculos.GetByPlaca(ctx, strings.ToUpper(strings.TrimSpace(placa)))
}

func (s *Service) Buscar(ctx context.Context, q string) ([]domain.Vehiculo, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.vehiculos.List(ctx)
	}
	return s.vehiculos.Search(ctx, q)
}

func (s *Service) Crear(ctx context.Context, req VehiculoRequest) (*domain.Vehiculo, error) {
	vehiculo := req.aDominio()
	if err := validar(vehiculo); err != nil {
		return nil, err
	}

	exists, err := s.vehiculos.ExistsPlaca(ctx, vehiculo.Placa, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPlacaDuplicada
	}

	if err := s.vehiculos.Create(ctx, vehiculo); err != nil {
		return nil, err
	}
	return vehiculo, nil
}

func (s *Service) Actualizar(ctx context.Context, id int64, req VehiculoRequest) (*domain.Vehiculo, error) {
	existente, err := s.vehiculos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vehiculo := req.aDominio()
	vehiculo.ID = existente.ID
	vehiculo.CreatedAt = existente.CreatedAt
	if err := validar(vehiculo); err != nil {
		return nil, err
	}

	duplicada, err := s.vehiculos.ExistsPlaca(ctx, vehiculo.Placa, id)
	if err != nil {
		return nil, err
	}
	if duplicada {
		return nil, ErrPlacaDuplicada
	}

	if err := s.vehiculos.Update(ctx, vehiculo); err != nil {
		return nil, err
	}
	return vehiculo, nil
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.vehiculos.Delete(ctx, id)
}

func validar(v *domain.Vehiculo) error {
	if v.Placa == "" {
		return ErrPlacaRequerida
	}
	if v.Kilometraje != nil && *v.Kilometraje < 0 {
		return ErrLecturaNegativa
	}
	if v.Horometro != nil && *v.Horometro < 0 {
		return ErrLecturaNegativa
	}
	return nil
}
