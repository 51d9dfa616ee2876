package servicio

import (
	"strings"

	"tallervehicular/internal/domain"
)

type ServicioRequest struct {
	Codigo         string `json:"codigo" binding:"required"`
	Nombre         string `json:"nombre" binding:"required"`
	Descripcion    string `json:"descripcion"`
	TiempoEstimado int    `json:"tiempoEstimado"`
	Activo         *bool  `json:"activo"`
}

func (r ServicioRequest) aDominio() *domain.Servicio {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return &domain.Servicio{
		Codigo:         strings.ToUpper(strings.TrimSpace(r.Codigo)),
		Nombre:         strings.TrimSpace(r.Nombre),
		Descripcion:    strings.TrimSpace(r.Descripcion),
		TiempoEstimado: r.TiempoEstimado,
		Activo:         activo,
	}
}
