package reporte

import (
	"time"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/modules/mantenimiento"
)

type ResumenOrdenes struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	EnProceso   int `json:"enProceso"`
	Pausadas    int `json:"pausadas"`
	Completadas int `json:"completadas"`
	Canceladas  int `json:"canceladas"`
	Correctivas int `json:"correctivas"`
	Preventivas int `json:"preventivas"`
}

type ReporteVehiculo struct {
	GeneradoEn       time.Time       `json:"generadoEn"`
	Vehiculo         domain.Vehiculo `json:"vehiculo"`
	Resumen          ResumenOrdenes  `json:"resumen"`
	Ordenes          []domain.Orden  `json:"ordenes"`
	UltimoPreventivo *domain.Orden   `json:"ultimoPreventivo,omitempty"`
}

type ReportePeriodo struct {
	GeneradoEn time.Time      `json:"generadoEn"`
	Inicio     time.Time      `json:"inicio"`
	Fin        time.Time      `json:"fin"`
	Resumen    ResumenOrdenes `json:"resumen"`
	Ordenes    []domain.Orden `json:"ordenes"`
}

// ConsumoRepuesto aggregates SALIDA movements per part.
type ConsumoRepuesto struct {
	RepuestoID int64  `json:"repuestoId"`
	Codigo     string `json:"codigo"`
	Nombre     string `json:"nombre"`
	Cantidad   int    `json:"cantidad"`
}

type ReporteRepuestos struct {
	GeneradoEn time.Time         `json:"generadoEn"`
	Consumo    []ConsumoRepuesto `json:"consumo"`
	BajoStock  []domain.Repuesto `json:"bajoStock"`
}

// ParticipacionEstado carries the percentage share used for the
// proportional bars in the rendered document.
type ParticipacionEstado struct {
	Etiqueta   string  `json:"etiqueta"`
	Cantidad   int     `json:"cantidad"`
	Porcentaje float64 `json:"porcentaje"`
}

type ReporteEstadisticas struct {
	GeneradoEn     time.Time             `json:"generadoEn"`
	Resumen        ResumenOrdenes        `json:"resumen"`
	PorEstado      []ParticipacionEstado `json:"porEstado"`
	PorTipo        []ParticipacionEstado `json:"porTipo"`
	TotalVehiculos int                   `json:"totalVehiculos"`
	TotalClientes  int                   `json:"totalClientes"`
	TotalServicios int                   `json:"totalServicios"`
	TotalRepuestos int                   `json:"totalRepuestos"`
	BajoStock      int                   `json:"bajoStock"`
}

type FilaPreventivo struct {
	Vehiculo         mantenimiento.EstadoVehiculo `json:"vehiculo"`
	UltimoPreventivo *domain.Orden                `json:"ultimoPreventivo,omitempty"`
}

type ReportePreventivos struct {
	GeneradoEn time.Time        `json:"generadoEn"`
	Filas      []FilaPreventivo `json:"filas"`
}
