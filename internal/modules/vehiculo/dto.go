package vehiculo

import (
	"strings"

	"tallervehicular/internal/domain"
)

type VehiculoRequest struct {
	Placa          string   `json:"placa" binding:"required"`
	NumeroVehiculo string   `json:"numeroVehiculo"`
	Marca          string   `json:"marca" binding:"required"`
	Modelo         string   `json:"modelo" binding:"required"`
	Anio           int      `json:"anio"`
	VIN            string   `json:"vin"`
	Color          string   `json:"color"`
	Kilometraje    *int     `json:"kilometraje"`
	Horometro      *float64 `json:"horometro"`
	ClienteID      *int64   `json:"clienteId"`
}

// aDominio normalizes the plate to its canonical uppercase form.
func (r VehiculoRequest) aDominio() *domain.Vehiculo {
	return &domain.Vehiculo{
		Placa:          strings.ToUpper(strings.TrimSpace(r.Placa)),
		NumeroVehiculo: strings.TrimSpace(r.NumeroVehiculo),
		Marca:          strings.TrimSpace(r.Marca),
		Modelo:         strings.TrimSpace(r.Modelo),
		Anio:           r.Anio,
		VIN:            strings.ToUpper(strings.TrimSpace(r.VIN)),
		Color:          strings.TrimSpace(r.Color),
		Kilometraje:    r.Kilometraje,
		Horometro:      r.Horometro,
		ClienteID:      r.ClienteID,
	}
}
