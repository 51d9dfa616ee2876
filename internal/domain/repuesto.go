package domain

import "time"

type Repuesto struct {
	ID           int64     `json:"id"`
	Codigo       string    `json:"codigo" gorm:"uniqueIndex" validate:"required"`
	Nombre       string    `json:"nombre" validate:"required"`
	Descripcion  string    `json:"descripcion,omitempty" gorm:"type:text"`
	Marca        string    `json:"marca,omitempty"`
	StockActual  int       `json:"stockActual" validate:"gte=0"`
	StockMinimo  int       `json:"stockMinimo" validate:"gte=0"`
	PrecioCompra float64   `json:"precioCompra"`
	PrecioVenta  float64   `json:"precioVenta"`
	Ubicacion    string    `json:"ubicacion,omitempty"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Repuesto) TableName() string { return "repuestos" }

// BajoStock: the boundary counts, equal stock is already low.
func (r *Repuesto) BajoStock() bool { return r.StockActual <= r.StockMinimo }

type TipoMovimiento string

const (
	MovimientoEntrada    TipoMovimiento = "ENTRADA"
	MovimientoSalida     TipoMovimiento = "SALIDA"
	MovimientoAjuste     TipoMovimiento = "AJUSTE"
	MovimientoDevolucion TipoMovimiento = "DEVOLUCION"
)

func (t TipoMovimiento) Valido() bool {
	switch t {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste, MovimientoDevolucion:
		return true
	}
	return false
}

// Movimiento is an append-only inventory ledger entry. Recording one
// adjusts the referenced repuesto's stock; entries are never edited or
// deleted.
// RegistradoSistema marks ledger rows written without an authenticated user.
const RegistradoSistema = "SISTEMA"

type Movimiento struct {
	ID            int64          `json:"id"`
	RepuestoID    int64          `json:"repuestoId" gorm:"index" validate:"required"`
	Repuesto      *Repuesto      `json:"repuesto,omitempty" gorm:"foreignKey:RepuestoID"`
	Tipo          TipoMovimiento `json:"tipo" validate:"required"`
	Cantidad      int            `json:"cantidad" validate:"required,gte=1"`
	Motivo        string         `json:"motivo,omitempty" gorm:"type:text"`
	UsuarioID     *int64         `json:"usuarioId,omitempty"`
	RegistradoPor string         `json:"registradoPor,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (Movimiento) TableName() string { return "movimientos" }

// Delta is the signed stock effect: entries and returns add, exits and
// adjustments subtract.
func (m *Movimiento) Delta() int {
	switch m.Tipo {
	case MovimientoEntrada, MovimientoDevolucion:
		return m.Cantidad
	default:
		return -m.Cantidad
	}
}
