package vehiculo

import (
	"context"
	"testing"

	"tallervehicular/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVehiculoRepo struct {
	mock.Mock
}

func (m *mockVehiculoRepo) List(ctx context.Context) ([]domain.Vehiculo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehiculo), args.Error(1)
}

func (m *mockVehiculoRepo) ListByCliente(ctx context.Context, clienteID int64) ([]domain.Vehiculo, error) {
	args := m.Called(ctx, clienteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehiculo), args.Error(1)
}

func (m *mockVehiculoRepo) GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehiculo), args.Error(1)
}

func (m *mockVehiculoRepo) GetByPlaca(ctx context.Context, placa string) (*domain.Vehiculo, error) {
	args := m.Called(ctx, placa)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehiculo), args.Error(1)
}

func (m *mockVehiculoRepo) Search(ctx context.Context, q string) ([]domain.Vehiculo, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehiculo), args.Error(1)
}

func (m *mockVehiculoRepo) ExistsPlaca(ctx context.Context, placa string, excludeID int64) (bool, error) {
	args := m.Called(ctx, placa, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVehiculoRepo) Create(ctx context.Context, vehiculo *domain.Vehiculo) error {
	args := m.Called(ctx, vehiculo)
	return args.Error(0)
}

func (m *mockVehiculoRepo) Update(ctx context.Context, vehiculo *domain.Vehiculo) error {
	args := m.Called(ctx, vehiculo)
	return args.Error(0)
}

func (m *mockVehiculoRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Crear_NormalizaPlaca(t *testing.T) {
	repo := new(mockVehiculoRepo)
	repo.On("ExistsPlaca", mock.Anything, "ABC-123", int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	km := 45000
	hr := 1250.5
	svc := NewService(repo)
	vehiculo, err := svc.Crear(context.Background(), VehiculoRequest{
		Placa:       " abc-123 ",
		Marca:       "Volvo",
		Modelo:      "FH",
		Anio:        2019,
		Kilometraje: &km,
		Horometro:   &hr,
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC-123", vehiculo.Placa)
	assert.Equal(t, 45000, *vehiculo.Kilometraje)
	assert.InDelta(t, 1250.5, *vehiculo.Horometro, 0.001)
}

func TestService_Crear_PlacaDuplicada(t *testing.T) {
	repo := new(mockVehiculoRepo)
	repo.On("ExistsPlaca", mock.Anything, "ABC-123", int64(0)).Return(true, nil)

	svc := NewService(repo)
	_, err := svc.Crear(context.Background(), VehiculoRequest{Placa: "ABC-123", Marca: "Volvo", Modelo: "FH"})

	assert.ErrorIs(t, err, ErrPlacaDuplicada)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Crear_LecturaNegativa(t *testing.T) {
	km := -5
	svc := NewService(new(mockVehiculoRepo))
	_, err := svc.Crear(context.Background(), VehiculoRequest{
		Placa:       "ABC-123",
		Marca:       "Volvo",
		Modelo:      "FH",
		Kilometraje: &km,
	})
	assert.ErrorIs(t, err, ErrLecturaNegativa)
}

func TestService_Actualizar_PermiteMismaPlaca(t *testing.T) {
	repo := new(mockVehiculoRepo)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Vehiculo{ID: 3, Placa: "ABC-123"}, nil)
	// the exclusion keeps the vehicle's own plate from counting as a duplicate
	repo.On("ExistsPlaca", mock.Anything, "ABC-123", int64(3)).Return(false, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	vehiculo, err := svc.Actualizar(context.Background(), 3, VehiculoRequest{
		Placa:  "ABC-123",
		Marca:  "Volvo",
		Modelo: "FH16",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), vehiculo.ID)
	assert.Equal(t, "FH16", vehiculo.Modelo)
}
