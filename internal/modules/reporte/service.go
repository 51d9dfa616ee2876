package reporte

import (
	"context"
	"time"
)

type Service struct {
	ordenes   OrdenReader
	vehiculos VehiculoReader
	clientes  ClienteReader
	servicios ServicioReader
	repuestos RepuestoReader
	flota     EstadoFlota
}

func NewService(
	ordenes OrdenReader,
	vehiculos VehiculoReader,
	clientes ClienteReader,
	servicios ServicioReader,
	repuestos RepuestoReader,
	flota EstadoFlota,
) *Service {
	return &Service{
		ordenes:   ordenes,
		vehiculos: vehiculos,
		clientes:  clientes,
		servicios: servicios,
		repuestos: repuestos,
		flota:     flota,
	}
}

func (s *Service) Vehiculo(ctx context.Context, vehiculoID int64) (*ReporteVehiculo, error) {
	vehiculo, err := s.vehiculos.GetByID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	ordenes, err := s.ordenes.ListByVehiculo(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}

	return &ReporteVehiculo{
		GeneradoEn:       time.Now(),
		Vehiculo:         *vehiculo,
		Resumen:          resumir(ordenes),
		Ordenes:          ordenes,
		UltimoPreventivo: ultimoPreventivo(ordenes),
	}, nil
}

func (s *Service) Periodo(ctx context.Context, inicio, fin time.Time) (*ReportePeriodo, error) {
	// fin is inclusive on the calendar day
	hasta := fin.AddDate(0, 0, 1)
	ordenes, err := s.ordenes.ListByPeriodo(ctx, inicio, hasta)
	if err != nil {
		return nil, err
	}

	return &ReportePeriodo{
		GeneradoEn: time.Now(),
		Inicio:     inicio,
		Fin:        fin,
		Resumen:    resumir(ordenes),
		Ordenes:    ordenes,
	}, nil
}

func (s *Service) Repuestos(ctx context.Context) (*ReporteRepuestos, error) {
	movimientos, err := s.repuestos.ListMovimientos(ctx, 0)
	if err != nil {
		return nil, err
	}
	bajoStock, err := s.repuestos.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}

	return &ReporteRepuestos{
		GeneradoEn: time.Now(),
		Consumo:    agregarConsumo(movimientos),
		BajoStock:  bajoStock,
	}, nil
}

func (s *Service) Estadisticas(ctx context.Context) (*ReporteEstadisticas, error) {
	ordenes, err := s.ordenes.List(ctx)
	if err != nil {
		return nil, err
	}
	vehiculos, err := s.vehiculos.List(ctx)
	if err != nil {
		return nil, err
	}
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	servicios, err := s.servicios.List(ctx)
	if err != nil {
		return nil, err
	}
	repuestos, err := s.repuestos.List(ctx)
	if err != nil {
		return nil, err
	}
	bajoStock, err := s.repuestos.ListBajoStock(ctx)
	if err != nil {
		return nil, err
	}

	resumen := resumir(ordenes)
	return &ReporteEstadisticas{
		GeneradoEn:     time.Now(),
		Resumen:        resumen,
		PorEstado:      participacionPorEstado(resumen),
		PorTipo:        participacionPorTipo(resumen),
		TotalVehiculos: len(vehiculos),
		TotalClientes:  len(clientes),
		TotalServicios: len(servicios),
		TotalRepuestos: len(repuestos),
		BajoStock:      len(bajoStock),
	}, nil
}

func (s *Service) Preventivos(ctx context.Context) (*ReportePreventivos, error) {
	estados, err := s.flota.Proximos(ctx)
	if err != nil {
		return nil, err
	}

	filas := make([]FilaPreventivo, 0, len(estados))
	for _, estado := range estados {
		ordenes, err := s.ordenes.ListByVehiculo(ctx, estado.VehiculoID)
		if err != nil {
			return nil, err
		}
		filas = append(filas, FilaPreventivo{
			Vehiculo:         estado,
			UltimoPreventivo: ultimoPreventivo(ordenes),
		})
	}

	return &ReportePreventivos{GeneradoEn: time.Now(), Filas: filas}, nil
}
