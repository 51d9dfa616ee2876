package domain

import "time"

type Vehiculo struct {
	ID             int64    `json:"id"`
	Placa          string   `json:"placa" gorm:"uniqueIndex" validate:"required"`
	NumeroVehiculo string   `json:"numeroVehiculo,omitempty"`
	Marca          string   `json:"marca" validate:"required"`
	Modelo         string   `json:"modelo" validate:"required"`
	Anio           int      `json:"anio"`
	VIN            string   `json:"vin,omitempty" gorm:"column:vin"`
	Color          string   `json:"color,omitempty"`
	Kilometraje    *int     `json:"kilometraje"`
	Horometro      *float64 `json:"horometro"`

	// Nullable owner: "sin asignar" is a valid state.
	ClienteID *int64   `json:"clienteId"`
	Cliente   *Cliente `json:"cliente,omitempty" gorm:"foreignKey:ClienteID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vehiculo) TableName() string { return "vehiculos" }
