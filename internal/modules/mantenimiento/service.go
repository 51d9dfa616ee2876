package mantenimiento

import (
	"context"
	"errors"
	"math"
	"time"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

// margenProximo: a covered dimension inside a tenth of its interval
// counts as PROXIMO.
const margenProximo = 0.10

type Service struct {
	planes    MantenimientoRepositoryInterface
	vehiculos VehiculoReader
	ordenes   OrdenReader
	ahora     func() time.Time
}

func NewService(planes MantenimientoRepositoryInterface, vehiculos VehiculoReader, ordenes OrdenReader) *Service {
	return &Service{
		planes:    planes,
		vehiculos: vehiculos,
		ordenes:   ordenes,
		ahora:     time.Now,
	}
}

func (s *Service) ObtenerPorVehiculo(ctx context.Context, vehiculoID int64) (*domain.PlanMantenimiento, error) {
	return s.planes.GetByVehiculo(ctx, vehiculoID)
}

// Configurar upserts the plan and projects the next-due triple from the
// vehicle's current readings.
func (s *Service) Configurar(ctx context.Context, req ConfigurarRequest) (*domain.PlanMantenimiento, error) {
	if !req.TipoControl.Valido() {
		return nil, ErrTipoControlInvalido
	}
	if err := validarIntervalos(req); err != nil {
		return nil, err
	}

	vehiculo, err := s.vehiculos.GetByID(ctx, req.VehiculoID)
	if err != nil {
		return nil, err
	}

	plan := &domain.PlanMantenimiento{
		VehiculoID:           req.VehiculoID,
		TipoControl:          req.TipoControl,
		IntervaloKilometraje: req.IntervaloKilometraje,
		IntervaloHoras:       req.IntervaloHoras,
		IntervaloDias:        req.IntervaloDias,
	}

	if req.TipoControl.CubreKilometraje() {
		base := 0
		if vehiculo.Kilometraje != nil {
			base = *vehiculo.Kilometraje
		}
		proximo := base + req.IntervaloKilometraje
		plan.ProximoKilometraje = &proximo
	}
	if req.TipoControl.CubreHoras() {
		base := 0.0
		if vehiculo.Horometro != nil {
			base = *vehiculo.Horometro
		}
		proximo := base + req.IntervaloHoras
		plan.ProximoHorometro = &proximo
	}
	if req.TipoControl.CubreDias() {
		proxima := s.ahora().AddDate(0, 0, req.IntervaloDias)
		plan.ProximaFecha = &proxima
	}

	if err := s.planes.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Completar recomputes the plan from a completed preventive order, for
// the explicit endpoint.
func (s *Service) Completar(ctx context.Context, ordenID int64) (*domain.PlanMantenimiento, error) {
	orden, err := s.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		return nil, err
	}
	if orden.Tipo != domain.OrdenPreventiva {
		return nil, ErrOrdenNoPreventiva
	}
	if orden.Estado != domain.OrdenCompletada {
		return nil, ErrOrdenNoCompletada
	}

	if err := s.CompletarPorOrden(ctx, orden); err != nil {
		return nil, err
	}
	return s.planes.GetByVehiculo(ctx, orden.VehiculoID)
}

// CompletarPorOrden advances the next-due triple from the order's
// snapshot. Vehicles without a plan are left alone.
func (s *Service) CompletarPorOrden(ctx context.Context, orden *domain.Orden) error {
	plan, err := s.planes.GetByVehiculo(ctx, orden.VehiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	fin := s.ahora()
	if orden.FechaFinalizacion != nil {
		fin = *orden.FechaFinalizacion
	}

	if plan.TipoControl.CubreKilometraje() {
		base := 0
		if orden.KilometrajeActual != nil {
			base = *orden.KilometrajeActual
		}
		proximo := base + plan.IntervaloKilometraje
		plan.ProximoKilometraje = &proximo
	}
	if plan.TipoControl.CubreHoras() {
		base := 0.0
		if orden.HorometroActual != nil {
			base = *orden.HorometroActual
		}
		proximo := base + plan.IntervaloHoras
		plan.ProximoHorometro = &proximo
	}
	if plan.TipoControl.CubreDias() {
		proxima := fin.AddDate(0, 0, plan.IntervaloDias)
		plan.ProximaFecha = &proxima
	}
	plan.UltimoMantenimiento = &fin

	return s.planes.Upsert(ctx, plan)
}

// Proximos builds the fleet-wide due-status feed: one row per vehicle,
// classified against its plan.
func (s *Service) Proximos(ctx context.Context) ([]EstadoVehiculo, error) {
	vehiculos, err := s.vehiculos.List(ctx)
	if err != nil {
		return nil, err
	}
	planes, err := s.planes.List(ctx)
	if err != nil {
		return nil, err
	}

	porVehiculo := make(map[int64]*domain.PlanMantenimiento, len(planes))
	for i := range planes {
		porVehiculo[planes[i].VehiculoID] = &planes[i]
	}

	filas := make([]EstadoVehiculo, 0, len(vehiculos))
	for i := range vehiculos {
		filas = append(filas, s.clasificar(&vehiculos[i], porVehiculo[vehiculos[i].ID]))
	}
	return filas, nil
}

func (s *Service) clasificar(vehiculo *domain.Vehiculo, plan *domain.PlanMantenimiento) EstadoVehiculo {
	fila := EstadoVehiculo{
		VehiculoID: vehiculo.ID,
		Placa:      vehiculo.Placa,
		Marca:      vehiculo.Marca,
		Modelo:     vehiculo.Modelo,
		Estado:     domain.MantenimientoSinConfigurar,
	}
	if plan == nil {
		return fila
	}

	fila.TipoControl = &plan.TipoControl
	fila.ProximoKilometraje = plan.ProximoKilometraje
	fila.ProximoHorometro = plan.ProximoHorometro
	fila.ProximaFecha = plan.ProximaFecha
	fila.Estado = domain.MantenimientoOK

	// Worst covered dimension governs.
	peor := func(estado domain.EstadoMantenimiento) {
		if estado == domain.MantenimientoVencido ||
			(estado == domain.MantenimientoProximo && fila.Estado == domain.MantenimientoOK) {
			fila.Estado = estado
		}
	}

	if plan.TipoControl.CubreKilometraje() && plan.ProximoKilometraje != nil {
		actual := 0
		if vehiculo.Kilometraje != nil {
			actual = *vehiculo.Kilometraje
		}
		restante := *plan.ProximoKilometraje - actual
		fila.KilometrajeRestante = &restante
		peor(clasificarRestante(float64(restante), float64(plan.IntervaloKilometraje)))
	}
	if plan.TipoControl.CubreHoras() && plan.ProximoHorometro != nil {
		actual := 0.0
		if vehiculo.Horometro != nil {
			actual = *vehiculo.Horometro
		}
		restante := *plan.ProximoHorometro - actual
		fila.HorasRestantes = &restante
		peor(clasificarRestante(restante, plan.IntervaloHoras))
	}
	if plan.TipoControl.CubreDias() && plan.ProximaFecha != nil {
		restante := int(math.Ceil(plan.ProximaFecha.Sub(s.ahora()).Hours() / 24))
		fila.DiasRestantes = &restante
		peor(clasificarRestante(float64(restante), float64(plan.IntervaloDias)))
	}

	return fila
}

func clasificarRestante(restante, intervalo float64) domain.EstadoMantenimiento {
	switch {
	case restante <= 0:
		return domain.MantenimientoVencido
	case intervalo > 0 && restante <= intervalo*margenProximo:
		return domain.MantenimientoProximo
	default:
		return domain.MantenimientoOK
	}
}

func validarIntervalos(req ConfigurarRequest) error {
	if req.TipoControl.CubreKilometraje() && req.IntervaloKilometraje <= 0 {
		return ErrIntervaloRequerido
	}
	if req.TipoControl.CubreHoras() && req.IntervaloHoras <= 0 {
		return ErrIntervaloRequerido
	}
	if req.TipoControl.CubreDias() && req.IntervaloDias <= 0 {
		return ErrIntervaloRequerido
	}
	return nil
}
