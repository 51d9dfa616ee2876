package mantenimiento

import (
	"time"

	"tallervehicular/internal/domain"
)

type ConfigurarRequest struct {
	VehiculoID           int64              `json:"vehiculoId" binding:"required"`
	TipoControl          domain.TipoControl `json:"tipoControl" binding:"required"`
	IntervaloKilometraje int                `json:"intervaloKilometraje"`
	IntervaloHoras       float64            `json:"intervaloHoras"`
	IntervaloDias        int                `json:"intervaloDias"`
}

// EstadoVehiculo is one row of the due-status feed.
type EstadoVehiculo struct {
	VehiculoID  int64               `json:"vehiculoId"`
	Placa       string              `json:"placa"`
	Marca       string              `json:"marca"`
	Modelo      string              `json:"modelo"`
	TipoControl *domain.TipoControl `json:"tipoControl,omitempty"`

	Estado domain.EstadoMantenimiento `json:"estado"`

	KilometrajeRestante *int       `json:"kilometrajeRestante,omitempty"`
	HorasRestantes      *float64   `json:"horasRestantes,omitempty"`
	DiasRestantes       *int       `json:"diasRestantes,omitempty"`
	ProximoKilometraje  *int       `json:"proximoKilometraje,omitempty"`
	ProximoHorometro    *float64   `json:"proximoHorometro,omitempty"`
	ProximaFecha        *time.Time `json:"proximaFecha,omitempty"`
}
