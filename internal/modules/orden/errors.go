package orden

import "errors"

var (
	ErrTipoInvalido       = errors.New("tipo de orden inválido")
	ErrEstadoInvalido     = errors.New("estado de orden inválido")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
	ErrOrdenTerminal      = errors.New("la orden está en un estado terminal")
	ErrCantidadInvalida   = errors.New("la cantidad debe ser mayor a cero")
	ErrStockInsuficiente  = errors.New("stock insuficiente para el repuesto solicitado")
)
