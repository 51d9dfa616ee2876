package repuesto

import (
	"context"
	"errors"
	"strings"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/repository"
)

type Service struct {
	repuestos RepuestoRepositoryInterface
}

func NewService(repuestos RepuestoRepositoryInterface) *Service {
	return &Service{repuestos: repuestos}
}

func (s *Service) Listar(ctx context.Context) ([]domain.Repuesto, error) {
	return s.repuestos.List(ctx)
}

func (s *Service) ListarActivos(ctx context.Context) ([]domain.Repuesto, error) {
	return s.repuestos.ListActivos(ctx)
}

func (s *Service) ListarBajoStock(ctx context.Context) ([]domain.Repuesto, error) {
	return s.repuestos.ListBajoStock(ctx)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*domain.Repuesto, error) {
	return s.repuestos.GetByID(ctx, id)
}

func (s *Service) Crear(ctx context.Context, req RepuestoRequest) (*domain.Repuesto, error) {
	repuesto := req.aDominio()

	exists, err := s.repuestos.ExistsCodigo(ctx, repuesto.Codigo, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodigoDuplicado
	}

	if err := s.repuestos.Create(ctx, repuesto); err != nil {
		return nil, err
	}
	return repuesto, nil
}

// Actualizar never touches stockActual: stock only moves through the
// movement ledger.
func (s *Service) Actualizar(ctx context.Context, id int64, req RepuestoRequest) (*domain.Repuesto, error) {
	existente, err := s.repuestos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repuesto := req.aDominio()
	repuesto.ID = existente.ID
	repuesto.StockActual = existente.StockActual
	repuesto.CreatedAt = existente.CreatedAt

	duplicado, err := s.repuestos.ExistsCodigo(ctx, repuesto.Codigo, id)
	if err != nil {
		return nil, err
	}
	if duplicado {
		return nil, ErrCodigoDuplicado
	}

	if err := s.repuestos.Update(ctx, repuesto); err != nil {
		return nil, err
	}
	return repuesto, nil
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.repuestos.Delete(ctx, id)
}

func (s *Service) RegistrarMovimiento(ctx context.Context, req MovimientoRequest, usuarioID *int64) (*domain.Movimiento, error) {
	if !req.Tipo.Valido() {
		return nil, ErrTipoInvalido
	}
	if req.Cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}

	mov := &domain.Movimiento{
		RepuestoID: req.RepuestoID,
		Tipo:       req.Tipo,
		Cantidad:   req.Cantidad,
		Motivo:     strings.TrimSpace(req.Motivo),
		UsuarioID:  usuarioID,
	}
	if err := s.repuestos.RegistrarMovimiento(ctx, mov); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return nil, ErrStockInsuficiente
		}
		return nil, err
	}
	return mov, nil
}

func (s *Service) ListarMovimientos(ctx context.Context, repuestoID int64) ([]domain.Movimiento, error) {
	return s.repuestos.ListMovimientos(ctx, repuestoID)
}
