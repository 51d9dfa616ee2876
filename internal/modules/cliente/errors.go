package cliente

import "errors"

var (
	ErrDocumentoDuplicado = errors.New("ya existe un cliente con ese número de documento")
	ErrPadronNoEncontrado = errors.New("documento no encontrado en el padrón")
	ErrPadronNoDisponible = errors.New("servicio de consulta no disponible")
)
