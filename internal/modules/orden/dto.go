package orden

import (
	"time"

	"tallervehicular/internal/domain"
)

type LineaServicio struct {
	ServicioID int64 `json:"servicioId" binding:"required"`
	Cantidad   int   `json:"cantidad"`
}

type LineaRepuesto struct {
	RepuestoID int64 `json:"repuestoId" binding:"required"`
	Cantidad   int   `json:"cantidad" binding:"required"`
}

type CrearOrdenRequest struct {
	Tipo              domain.TipoOrden `json:"tipo" binding:"required"`
	FechaIngreso      *time.Time       `json:"fechaIngreso"`
	FechaPromesa      *time.Time       `json:"fechaPromesa"`
	Diagnostico       string           `json:"diagnostico"`
	Observaciones     string           `json:"observaciones"`
	KilometrajeActual *int             `json:"kilometrajeActual"`
	HorometroActual   *float64         `json:"horometroActual"`
	VehiculoID        int64            `json:"vehiculoId" binding:"required"`
	Servicios         []LineaServicio  `json:"servicios"`
	Repuestos         []LineaRepuesto  `json:"repuestos"`
}

type ActualizarOrdenRequest struct {
	Estado            *domain.EstadoOrden `json:"estado"`
	FechaPromesa      *time.Time          `json:"fechaPromesa"`
	FechaFinalizacion *time.Time          `json:"fechaFinalizacion"`
	Diagnostico       *string             `json:"diagnostico"`
	Observaciones     *string             `json:"observaciones"`
	KilometrajeActual *int                `json:"kilometrajeActual"`
	HorometroActual   *float64            `json:"horometroActual"`
}
