package mantenimiento

import "errors"

var (
	ErrTipoControlInvalido = errors.New("tipo de control inválido")
	ErrIntervaloRequerido  = errors.New("el intervalo del tipo de control debe ser mayor a cero")
	ErrOrdenNoCompletada   = errors.New("la orden no está completada")
	ErrOrdenNoPreventiva   = errors.New("la orden no es de tipo preventivo")
)
