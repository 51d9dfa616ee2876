package reporte

import (
	"sort"

	"tallervehicular/internal/domain"
)

// resumir tallies orders by estado and tipo.
func resumir(ordenes []domain.Orden) ResumenOrdenes {
	var r ResumenOrdenes
	r.Total = len(ordenes)
	for i := range ordenes {
		switch ordenes[i].Estado {
		case domain.OrdenPendiente:
			r.Pendientes++
		case domain.OrdenEnProceso:
			r.EnProceso++
		case domain.OrdenPausada:
			r.Pausadas++
		case domain.OrdenCompletada:
			r.Completadas++
		case domain.OrdenCancelada:
			r.Canceladas++
		}
		switch ordenes[i].Tipo {
		case domain.OrdenCorrectiva:
			r.Correctivas++
		case domain.OrdenPreventiva:
			r.Preventivas++
		}
	}
	return r
}

// ultimoPreventivo picks the most recently finished completed
// preventive order, nil when there is none.
func ultimoPreventivo(ordenes []domain.Orden) *domain.Orden {
	var mejor *domain.Orden
	for i := range ordenes {
		o := &ordenes[i]
		if o.Tipo != domain.OrdenPreventiva || o.Estado != domain.OrdenCompletada {
			continue
		}
		if mejor == nil {
			mejor = o
			continue
		}
		mejorFecha := mejor.FechaIngreso
		if mejor.FechaFinalizacion != nil {
			mejorFecha = *mejor.FechaFinalizacion
		}
		fecha := o.FechaIngreso
		if o.FechaFinalizacion != nil {
			fecha = *o.FechaFinalizacion
		}
		if fecha.After(mejorFecha) {
			mejor = o
		}
	}
	return mejor
}

// agregarConsumo reduces the movement ledger to per-part SALIDA totals,
// largest consumers first.
func agregarConsumo(movimientos []domain.Movimiento) []ConsumoRepuesto {
	porRepuesto := make(map[int64]*ConsumoRepuesto)
	for i := range movimientos {
		mov := &movimientos[i]
		if mov.Tipo != domain.MovimientoSalida {
			continue
		}
		fila, ok := porRepuesto[mov.RepuestoID]
		if !ok {
			fila = &ConsumoRepuesto{RepuestoID: mov.RepuestoID}
			if mov.Repuesto != nil {
				fila.Codigo = mov.Repuesto.Codigo
				fila.Nombre = mov.Repuesto.Nombre
			}
			porRepuesto[mov.RepuestoID] = fila
		}
		fila.Cantidad += mov.Cantidad
	}

	consumo := make([]ConsumoRepuesto, 0, len(porRepuesto))
	for _, fila := range porRepuesto {
		consumo = append(consumo, *fila)
	}
	sort.Slice(consumo, func(i, j int) bool {
		if consumo[i].Cantidad != consumo[j].Cantidad {
			return consumo[i].Cantidad > consumo[j].Cantidad
		}
		return consumo[i].RepuestoID < consumo[j].RepuestoID
	})
	return consumo
}

func participaciones(pares []ParticipacionEstado, total int) []ParticipacionEstado {
	if total == 0 {
		return pares
	}
	for i := range pares {
		pares[i].Porcentaje = float64(pares[i].Cantidad) * 100 / float64(total)
	}
	return pares
}

func participacionPorEstado(r ResumenOrdenes) []ParticipacionEstado {
	return participaciones([]ParticipacionEstado{
		{Etiqueta: "Pendientes", Cantidad: r.Pendientes},
		{Etiqueta: "En proceso", Cantidad: r.EnProceso},
		{Etiqueta: "Pausadas", Cantidad: r.Pausadas},
		{Etiqueta: "Completadas", Cantidad: r.Completadas},
		{Etiqueta: "Canceladas", Cantidad: r.Canceladas},
	}, r.Total)
}

func participacionPorTipo(r ResumenOrdenes) []ParticipacionEstado {
	return participaciones([]ParticipacionEstado{
		{Etiqueta: "Correctivas", Cantidad: r.Correctivas},
		{Etiqueta: "Preventivas", Cantidad: r.Preventivas},
	}, r.Total)
}
