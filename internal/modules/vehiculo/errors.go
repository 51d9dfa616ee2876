package vehiculo

import "errors"

var (
	ErrPlacaDuplicada  = errors.New("ya existe un vehículo con esa placa")
	ErrPlacaRequerida  = errors.New("la placa es obligatoria")
	ErrLecturaNegativa = errors.New("kilometraje y horómetro no pueden ser negativos")
)
