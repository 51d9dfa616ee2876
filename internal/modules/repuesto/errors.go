package repuesto

import "errors"

var (
	ErrCodigoDuplicado   = errors.New("ya existe un repuesto con ese código")
	ErrTipoInvalido      = errors.New("tipo de movimiento inválido")
	ErrCantidadInvalida  = errors.New("la cantidad debe ser mayor a cero")
	ErrStockInsuficiente = errors.New("stock insuficiente para la salida")
)
