package repuesto

import (
	"context"
	"testing"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepuestoRepo struct {
	mock.Mock
}

func (m *mockRepuestoRepo) List(ctx context.Context) ([]domain.Repuesto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repuesto), args.Error(1)
}

func (m *mockRepuestoRepo) ListActivos(ctx context.Context) ([]domain.Repuesto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repuesto), args.Error(1)
}

func (m *mockRepuestoRepo) ListBajoStock(ctx context.Context) ([]domain.Repuesto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repuesto), args.Error(1)
}

func (m *mockRepuestoRepo) GetByID(ctx context.Context, id int64) (*domain.Repuesto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repuesto), args.Error(1)
}

func (m *mockRepuestoRepo) ExistsCodigo(ctx context.Context, codigo string, excludeID int64) (bool, error) {
	args := m.Called(ctx, codigo, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepuestoRepo) Create(ctx context.Context, repuesto *domain.Repuesto) error {
	args := m.Called(ctx, repuesto)
	return args.Error(0)
}

func (m *mockRepuestoRepo) Update(ctx context.Context, repuesto *domain.Repuesto) error {
	args := m.Called(ctx, repuesto)
	return args.Error(0)
}

func (m *mockRepuestoRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepuestoRepo) RegistrarMovimiento(ctx context.Context, mov *domain.Movimiento) error {
	args := m.Called(ctx, mov)
	return args.Error(0)
}

func (m *mockRepuestoRepo) ListMovimientos(ctx context.Context, repuestoID int64) ([]domain.Movimiento, error) {
	args := m.Called(ctx, repuestoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movimiento), args.Error(1)
}

func TestBajoStock_Boundary(t *testing.T) {
	r := domain.Repuesto{StockActual: 5, StockMinimo: 5}
	assert.True(t, r.BajoStock())

	r.StockActual = 6
	assert.False(t, r.BajoStock())
}

func TestService_Actualizar_NoPisaStock(t *testing.T) {
	repo := new(mockRepuestoRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Repuesto{
		ID: 1, Codigo: "FIL-001", StockActual: 12,
	}, nil)
	repo.On("ExistsCodigo", mock.Anything, "FIL-001", int64(1)).Return(false, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Repuesto) bool {
		return r.StockActual == 12
	})).Return(nil)

	svc := NewService(repo)
	actualizado, err := svc.Actualizar(context.Background(), 1, RepuestoRequest{
		Codigo:      "FIL-001",
		Nombre:      "Filtro de aceite",
		StockActual: 999,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, actualizado.StockActual)
}

func TestService_RegistrarMovimiento_TipoInvalido(t *testing.T) {
	svc := NewService(new(mockRepuestoRepo))
	_, err := svc.RegistrarMovimiento(context.Background(), MovimientoRequest{
		RepuestoID: 1,
		Tipo:       "PRESTAMO",
		Cantidad:   2,
	}, nil)
	assert.ErrorIs(t, err, ErrTipoInvalido)
}

func TestService_RegistrarMovimiento_CantidadInvalida(t *testing.T) {
	svc := NewService(new(mockRepuestoRepo))
	_, err := svc.RegistrarMovimiento(context.Background(), MovimientoRequest{
		RepuestoID: 1,
		Tipo:       domain.MovimientoEntrada,
		Cantidad:   0,
	}, nil)
	assert.ErrorIs(t, err, ErrCantidadInvalida)
}

func TestService_RegistrarMovimiento_SalidaSinStock(t *testing.T) {
	repo := new(mockRepuestoRepo)
	repo.On("RegistrarMovimiento", mock.Anything, mock.Anything).
		Return(repository.ErrStockInsuficiente)

	svc := NewService(repo)
	_, err := svc.RegistrarMovimiento(context.Background(), MovimientoRequest{
		RepuestoID: 1,
		Tipo:       domain.MovimientoSalida,
		Cantidad:   50,
	}, nil)

	assert.ErrorIs(t, err, ErrStockInsuficiente)
}

func TestService_RegistrarMovimiento_AdjuntaUsuario(t *testing.T) {
	repo := new(mockRepuestoRepo)
	repo.On("RegistrarMovimiento", mock.Anything, mock.MatchedBy(func(mov *domain.Movimiento) bool {
		return mov.UsuarioID != nil && *mov.UsuarioID == 7 && mov.Tipo == domain.MovimientoEntrada
	})).Return(nil)

	usuarioID := int64(7)
	svc := NewService(repo)
	mov, err := svc.RegistrarMovimiento(context.Background(), MovimientoRequest{
		RepuestoID: 1,
		Tipo:       domain.MovimientoEntrada,
		Cantidad:   10,
		Motivo:     " compra mensual ",
	}, &usuarioID)

	require.NoError(t, err)
	assert.Equal(t, "compra mensual", mov.Motivo)
}

func TestMovimiento_Delta(t *testing.T) {
	casos := []struct {
		tipo  domain.TipoMovimiento
		delta int
	}{
		{domain.MovimientoEntrada, 4},
		{domain.MovimientoDevolucion, 4},
		{domain.MovimientoSalida, -4},
		{domain.MovimientoAjuste, -4},
	}
	for _, tc := range casos {
		mov := domain.Movimiento{Tipo: tc.tipo, Cantidad: 4}
		assert.Equal(t, tc.delta, mov.Delta(), string(tc.tipo))
	}
}
