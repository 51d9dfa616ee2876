package domain

import "time"

type TipoControl string

const (
	ControlKilometraje TipoControl = "KILOMETRAJE"
	ControlHoras       TipoControl = "HORAS"
	ControlDias        TipoControl = "DIAS"
	ControlMixto       TipoControl = "MIXTO"
)

func (t TipoControl) Valido() bool {
	switch t {
	case ControlKilometraje, ControlHoras, ControlDias, ControlMixto:
		return true
	}
	return false
}

func (t TipoControl) CubreKilometraje() bool {
	return t == ControlKilometraje || t == ControlMixto
}

func (t TipoControl) CubreHoras() bool {
	return t == ControlHoras || t == ControlMixto
}

func (t TipoControl) CubreDias() bool {
	return t == ControlDias || t == ControlMixto
}

type EstadoMantenimiento string

const (
	MantenimientoOK            EstadoMantenimiento = "OK"
	MantenimientoProximo       EstadoMantenimiento = "PROXIMO"
	MantenimientoVencido       EstadoMantenimiento = "VENCIDO"
	MantenimientoSinConfigurar EstadoMantenimiento = "SIN_CONFIGURAR"
)

// PlanMantenimiento is the per-vehicle interval policy plus the computed
// next-due triple. MIXTO tracks all three dimensions; whichever threshold
// is reached first governs the due status.
type PlanMantenimiento struct {
	ID                   int64       `json:"id"`
	VehiculoID           int64       `json:"vehiculoId" gorm:"uniqueIndex" validate:"required"`
	TipoControl          TipoControl `json:"tipoControl" validate:"required"`
	IntervaloKilometraje int         `json:"intervaloKilometraje"`
	IntervaloHoras       float64     `json:"intervaloHoras"`
	IntervaloDias        int         `json:"intervaloDias"`

	ProximoKilometraje  *int       `json:"proximoKilometraje,omitempty"`
	ProximoHorometro    *float64   `json:"proximoHorometro,omitempty"`
	ProximaFecha        *time.Time `json:"proximaFecha,omitempty"`
	UltimoMantenimiento *time.Time `json:"ultimoMantenimiento,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PlanMantenimiento) TableName() string { return "planes_mantenimiento" }
