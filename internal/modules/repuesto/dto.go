package repuesto

import (
	"strings"

	"tallervehicular/internal/domain"
)

type RepuestoRequest struct {
	Codigo       string  `json:"codigo" binding:"required"`
	Nombre       string  `json:"nombre" binding:"required"`
	Descripcion  string  `json:"descripcion"`
	Marca        string  `json:"marca"`
	StockActual  int     `json:"stockActual"`
	StockMinimo  int     `json:"stockMinimo"`
	PrecioCompra float64 `json:"precioCompra"`
	PrecioVenta  float64 `json:"precioVenta"`
	Ubicacion    string  `json:"ubicacion"`
	Activo       *bool   `json:"activo"`
}

func (r RepuestoRequest) aDominio() *domain.Repuesto {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return &domain.Repuesto{
		Codigo:       strings.ToUpper(strings.TrimSpace(r.Codigo)),
		Nombre:       strings.TrimSpace(r.Nombre),
		Descripcion:  strings.TrimSpace(r.Descripcion),
		Marca:        strings.TrimSpace(r.Marca),
		StockActual:  r.StockActual,
		StockMinimo:  r.StockMinimo,
		PrecioCompra: r.PrecioCompra,
		PrecioVenta:  r.PrecioVenta,
		Ubicacion:    strings.TrimSpace(r.Ubicacion),
		Activo:       activo,
	}
}

type MovimientoRequest struct {
	RepuestoID int64                 `json:"repuestoId" binding:"required"`
	Tipo       domain.TipoMovimiento `json:"tipo" binding:"required"`
	Cantidad   int                   `json:"cantidad" binding:"required"`
	Motivo     string                `json:"motivo"`
}
