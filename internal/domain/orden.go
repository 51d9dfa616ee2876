package domain

import "time"

type EstadoOrden string

const (
	OrdenPendiente  EstadoOrden = "PENDIENTE"
	OrdenEnProceso  EstadoOrden = "EN_PROCESO"
	OrdenPausada    EstadoOrden = "PAUSADA"
	OrdenCompletada EstadoOrden = "COMPLETADA"
	OrdenCancelada  EstadoOrden = "CANCELADA"
)

type TipoOrden string

const (
	OrdenCorrectiva TipoOrden = "CORRECTIVO"
	OrdenPreventiva TipoOrden = "PREVENTIVO"
)

func (t TipoOrden) Valido() bool {
	return t == OrdenCorrectiva || t == OrdenPreventiva
}

// transiciones is the legal lifecycle: COMPLETADA and CANCELADA are
// terminal, PAUSADA and EN_PROCESO flip both ways.
var transiciones = map[EstadoOrden][]EstadoOrden{
	OrdenPendiente: {OrdenEnProceso, OrdenPausada, OrdenCancelada},
	OrdenEnProceso: {OrdenPausada, OrdenCompletada, OrdenCancelada},
	OrdenPausada:   {OrdenEnProceso, OrdenCompletada, OrdenCancelada},
}

func (e EstadoOrden) PuedeTransicionarA(destino EstadoOrden) bool {
	for _, s := range transiciones[e] {
		if s == destino {
			return true
		}
	}
	return false
}

func (e EstadoOrden) EsTerminal() bool {
	return e == OrdenCompletada || e == OrdenCancelada
}

func (e EstadoOrden) Valido() bool {
	switch e {
	case OrdenPendiente, OrdenEnProceso, OrdenPausada, OrdenCompletada, OrdenCancelada:
		return true
	}
	return false
}

type Orden struct {
	ID                int64       `json:"id"`
	Numero            string      `json:"numero" gorm:"uniqueIndex"`
	Tipo              TipoOrden   `json:"tipo" validate:"required"`
	Estado            EstadoOrden `json:"estado"`
	FechaIngreso      time.Time   `json:"fechaIngreso"`
	FechaPromesa      *time.Time  `json:"fechaPromesa,omitempty"`
	FechaFinalizacion *time.Time  `json:"fechaFinalizacion,omitempty"`
	Diagnostico       string      `json:"diagnostico,omitempty" gorm:"type:text"`
	Observaciones     string      `json:"observaciones,omitempty" gorm:"type:text"`

	// Snapshot of the vehicle's readings at intake.
	KilometrajeActual *int     `json:"kilometrajeActual"`
	HorometroActual   *float64 `json:"horometroActual"`

	VehiculoID int64     `json:"vehiculoId" validate:"required"`
	Vehiculo   *Vehiculo `json:"vehiculo,omitempty" gorm:"foreignKey:VehiculoID"`
	ClienteID  *int64    `json:"clienteId"`
	Cliente    *Cliente  `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`

	Servicios []OrdenServicio `json:"servicios,omitempty" gorm:"foreignKey:OrdenID"`
	Repuestos []OrdenRepuesto `json:"repuestos,omitempty" gorm:"foreignKey:OrdenID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Orden) TableName() string { return "ordenes" }

type OrdenServicio struct {
	ID         int64     `json:"id"`
	OrdenID    int64     `json:"ordenId" gorm:"index"`
	ServicioID int64     `json:"servicioId"`
	Servicio   *Servicio `json:"servicio,omitempty" gorm:"foreignKey:ServicioID"`
	Cantidad   int       `json:"cantidad"`
}

func (OrdenServicio) TableName() string { return "orden_servicios" }

type OrdenRepuesto struct {
	ID         int64     `json:"id"`
	OrdenID    int64     `json:"ordenId" gorm:"index"`
	RepuestoID int64     `json:"repuestoId"`
	Repuesto   *Repuesto `json:"repuesto,omitempty" gorm:"foreignKey:RepuestoID"`
	Cantidad   int       `json:"cantidad"`
}

func (OrdenRepuesto) TableName() string { return "orden_repuestos" }
