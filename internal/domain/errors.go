package domain

import "errors"

var (
	ErrTipoDocumentoInvalido = errors.New("tipo de documento invalido")
	ErrDocumentoRequerido    = errors.New("numero de documento requerido")
	ErrRazonSocialRequerida  = errors.New("razon social requerida para RUC")
	ErrNombresRequeridos     = errors.New("nombres requeridos")
)
