package orden

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/repository"
)

type Service struct {
	ordenes     OrdenRepositoryInterface
	vehiculos   VehiculoReader
	repuestos   RepuestoReader
	programador ProgramadorMantenimiento
}

func NewService(
	ordenes OrdenRepositoryInterface,
	vehiculos VehiculoReader,
	repuestos RepuestoReader,
	programador ProgramadorMantenimiento,
) *Service {
	return &Service{
		ordenes:     ordenes,
		vehiculos:   vehiculos,
		repuestos:   repuestos,
		programador: programador,
	}
}

func (s *Service) Listar(ctx context.Context) ([]domain.Orden, error) {
	return s.ordenes.List(ctx)
}

func (s *Service) Obtener(ctx context.Context, id int64) (*domain.Orden, error) {
	return s.ordenes.GetByID(ctx, id)
}

func (s *Service) ListarPorVehiculo(ctx context.Context, vehiculoID int64) ([]domain.Orden, error) {
	return s.ordenes.ListByVehiculo(ctx, vehiculoID)
}

func (s *Service) Estadisticas(ctx context.Context) (*repository.EstadisticasOrdenes, error) {
	return s.ordenes.Estadisticas(ctx)
}

func (s *Service) Crear(ctx context.Context, req CrearOrdenRequest, usuarioID *int64) (*domain.Orden, error) {
	if !req.Tipo.Valido() {
		return nil, ErrTipoInvalido
	}

	vehiculo, err := s.vehiculos.GetByID(ctx, req.VehiculoID)
	if err != nil {
		return nil, err
	}

	fechaIngreso := time.Now()
	if req.FechaIngreso != nil {
		fechaIngreso = *req.FechaIngreso
	}

	// Readings fall back to the vehicle's registered values so the order
	// always carries a snapshot.
	kilometraje := req.KilometrajeActual
	if kilometraje == nil {
		kilometraje = vehiculo.Kilometraje
	}
	horometro := req.HorometroActual
	if horometro == nil {
		horometro = vehiculo.Horometro
	}

	servicios, err := prepararServicios(req.Servicios)
	if err != nil {
		return nil, err
	}
	repuestos, err := s.prepararRepuestos(ctx, req.Repuestos)
	if err != nil {
		return nil, err
	}

	numero, err := s.ordenes.NextNumero(ctx, fechaIngreso.Year())
	if err != nil {
		return nil, err
	}

	orden := &domain.Orden{
		Numero:            numero,
		Tipo:              req.Tipo,
		Estado:            domain.OrdenPendiente,
		FechaIngreso:      fechaIngreso,
		FechaPromesa:      req.FechaPromesa,
		Diagnostico:       strings.TrimSpace(req.Diagnostico),
		Observaciones:     strings.TrimSpace(req.Observaciones),
		KilometrajeActual: kilometraje,
		HorometroActual:   horometro,
		VehiculoID:        vehiculo.ID,
		ClienteID:         vehiculo.ClienteID,
		Servicios:         servicios,
		Repuestos:         repuestos,
	}

	if err := s.ordenes.Create(ctx, orden, usuarioID); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return nil, ErrStockInsuficiente
		}
		return nil, err
	}
	return s.ordenes.GetByID(ctx, orden.ID)
}

func (s *Service) Actualizar(ctx context.Context, id int64, req ActualizarOrdenRequest) (*domain.Orden, error) {
	orden, err := s.ordenes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	completando := false
	if req.Estado != nil && *req.Estado != orden.Estado {
		destino := *req.Estado
		if !destino.Valido() {
			return nil, ErrEstadoInvalido
		}
		if !orden.Estado.PuedeTransicionarA(destino) {
			return nil, ErrTransicionInvalida
		}
		completando = destino == domain.OrdenCompletada
		orden.Estado = destino
	}

	if req.FechaPromesa != nil {
		orden.FechaPromesa = req.FechaPromesa
	}
	if req.Diagnostico != nil {
		orden.Diagnostico = strings.TrimSpace(*req.Diagnostico)
	}
	if req.Observaciones != nil {
		orden.Observaciones = strings.TrimSpace(*req.Observaciones)
	}
	if req.KilometrajeActual != nil {
		orden.KilometrajeActual = req.KilometrajeActual
	}
	if req.HorometroActual != nil {
		orden.HorometroActual = req.HorometroActual
	}

	if completando {
		fin := time.Now()
		if req.FechaFinalizacion != nil {
			fin = *req.FechaFinalizacion
		}
		orden.FechaFinalizacion = &fin
	} else if req.FechaFinalizacion != nil {
		orden.FechaFinalizacion = req.FechaFinalizacion
	}

	if err := s.ordenes.Update(ctx, orden); err != nil {
		return nil, err
	}

	if completando && orden.Tipo == domain.OrdenPreventiva {
		if err := s.programador.CompletarPorOrden(ctx, orden); err != nil {
			// The order is already completed; a scheduling failure must
			// not undo that.
			log.Printf("mantenimiento: fallo al programar seguimiento orden=%s: %v", orden.Numero, err)
		}
	}

	return s.ordenes.GetByID(ctx, orden.ID)
}

func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.ordenes.Delete(ctx, id)
}

func (s *Service) AgregarServicio(ctx context.Context, ordenID int64, linea LineaServicio) (*domain.Orden, error) {
	orden, err := s.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		return nil, err
	}
	if orden.Estado.EsTerminal() {
		return nil, ErrOrdenTerminal
	}

	cantidad := linea.Cantidad
	if cantidad == 0 {
		cantidad = 1
	}
	if cantidad < 0 {
		return nil, ErrCantidadInvalida
	}

	if err := s.ordenes.AgregarServicio(ctx, &domain.OrdenServicio{
		OrdenID:    orden.ID,
		ServicioID: linea.ServicioID,
		Cantidad:   cantidad,
	}); err != nil {
		return nil, err
	}
	return s.ordenes.GetByID(ctx, orden.ID)
}

func (s *Service) AgregarRepuesto(ctx context.Context, ordenID int64, linea LineaRepuesto, usuarioID *int64) (*domain.Orden, error) {
	orden, err := s.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		return nil, err
	}
	if orden.Estado.EsTerminal() {
		return nil, ErrOrdenTerminal
	}
	if linea.Cantidad <= 0 {
		return nil, ErrCantidadInvalida
	}

	repuesto, err := s.repuestos.GetByID(ctx, linea.RepuestoID)
	if err != nil {
		return nil, err
	}
	if linea.Cantidad > repuesto.StockActual {
		return nil, ErrStockInsuficiente
	}

	if err := s.ordenes.AgregarRepuesto(ctx, orden.Numero, &domain.OrdenRepuesto{
		OrdenID:    orden.ID,
		RepuestoID: linea.RepuestoID,
		Cantidad:   linea.Cantidad,
	}, usuarioID); err != nil {
		if errors.Is(err, repository.ErrStockInsuficiente) {
			return nil, ErrStockInsuficiente
		}
		return nil, err
	}
	return s.ordenes.GetByID(ctx, orden.ID)
}

func prepararServicios(lineas []LineaServicio) ([]domain.OrdenServicio, error) {
	out := make([]domain.OrdenServicio, 0, len(lineas))
	for _, l := range lineas {
		cantidad := l.Cantidad
		if cantidad == 0 {
			cantidad = 1
		}
		if cantidad < 0 {
			return nil, ErrCantidadInvalida
		}
		out = append(out, domain.OrdenServicio{ServicioID: l.ServicioID, Cantidad: cantidad})
	}
	return out, nil
}

func (s *Service) prepararRepuestos(ctx context.Context, lineas []LineaRepuesto) ([]domain.OrdenRepuesto, error) {
	out := make([]domain.OrdenRepuesto, 0, len(lineas))
	for _, l := range lineas {
		if l.Cantidad <= 0 {
			return nil, ErrCantidadInvalida
		}
		repuesto, err := s.repuestos.GetByID(ctx, l.RepuestoID)
		if err != nil {
			return nil, err
		}
		if l.Cantidad > repuesto.StockActual {
			return nil, ErrStockInsuficiente
		}
		out = append(out, domain.OrdenRepuesto{RepuestoID: l.RepuestoID, Cantidad: l.Cantidad})
	}
	return out, nil
}
