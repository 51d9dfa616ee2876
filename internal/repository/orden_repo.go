package repository

import (
	"context"
	"fmt"
	"time"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type OrdenRepository struct {
	db *gorm.DB
}

func NewOrdenRepository(db *gorm.DB) *OrdenRepository {
	return &OrdenRepository{db: db}
}

func (r *OrdenRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Vehiculo").
		Preload("Cliente").
		Preload("Servicios.Servicio").
		Preload("Repuestos.Repuesto")
}

func (r *OrdenRepository) List(ctx context.Context) ([]domain.Orden, error) {
	var ordenes []domain.Orden
	tx := r.preloaded(ctx).Order("id DESC").Find(&ordenes)
	return ordenes, tx.Error
}

func (r *OrdenRepository) GetByID(ctx context.Context, id int64) (*domain.Orden, error) {
	var orden domain.Orden
	tx := r.preloaded(ctx).First(&orden, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &orden, nil
}

func (r *OrdenRepository) ListByVehiculo(ctx context.Context, vehiculoID int64) ([]domain.Orden, error) {
	var ordenes []domain.Orden
	tx := r.preloaded(ctx).
		Where("vehiculo_id = ?", vehiculoID).
		Order("fecha_ingreso DESC").
		Find(&ordenes)
	return ordenes, tx.Error
}

func (r *OrdenRepository) ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]domain.Orden, error) {
	var ordenes []domain.Orden
	tx := r.preloaded(ctx).
		Where("fecha_ingreso >= ? AND fecha_ingreso < ?", desde, hasta).
		Order("fecha_ingreso").
		Find(&ordenes)
	return ordenes, tx.Error
}

// NextNumero issues OT-<year>-<seq>, sequence restarting every year.
func (r *OrdenRepository) NextNumero(ctx context.Context, year int) (string, error) {
	var cnt int64
	prefix := fmt.Sprintf("OT-%d-", year)
	tx := r.db.WithContext(ctx).Model(&domain.Orden{}).
		Where("numero LIKE ?", prefix+"%").
		Count(&cnt)
	if tx.Error != nil {
		return "", tx.Error
	}
	return fmt.Sprintf("%s%04d", prefix, cnt+1), nil
}

// Create persists the order with its lines and, for every repuesto line,
// records a SALIDA movement that debits stock. Everything commits or
// rolls back together.
func (r *OrdenRepository) Create(ctx context.Context, orden *domain.Orden, usuarioID *int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orden).Error; err != nil {
			return err
		}
		for i := range orden.Repuestos {
			mov := &domain.Movimiento{
				RepuestoID: orden.Repuestos[i].RepuestoID,
				Tipo:       domain.MovimientoSalida,
				Cantidad:   orden.Repuestos[i].Cantidad,
				Motivo:     "Orden " + orden.Numero,
				UsuarioID:  usuarioID,
			}
			if err := registrarMovimientoTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrdenRepository) Update(ctx context.Context, orden *domain.Orden) error {
	return r.db.WithContext(ctx).
		Omit("Servicios", "Repuestos", "Vehiculo", "Cliente").
		Save(orden).Error
}

func (r *OrdenRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("orden_id = ?", id).Delete(&domain.OrdenServicio{}).Error; err != nil {
			return err
		}
		if err := tx.Where("orden_id = ?", id).Delete(&domain.OrdenRepuesto{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Orden{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *OrdenRepository) AgregarServicio(ctx context.Context, linea *domain.OrdenServicio) error {
	return r.db.WithContext(ctx).Create(linea).Error
}

// AgregarRepuesto appends the line and debits stock with a SALIDA
// movement in the same transaction.
func (r *OrdenRepository) AgregarRepuesto(ctx context.Context, numero string, linea *domain.OrdenRepuesto, usuarioID *int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(linea).Error; err != nil {
			return err
		}
		mov := &domain.Movimiento{
			RepuestoID: linea.RepuestoID,
			Tipo:       domain.MovimientoSalida,
			Cantidad:   linea.Cantidad,
			Motivo:     "Orden " + numero,
			UsuarioID:  usuarioID,
		}
		return registrarMovimientoTx(tx, mov)
	})
}

type EstadisticasOrdenes struct {
	Total       int64 `json:"total"`
	Pendientes  int64 `json:"pendientes"`
	EnProceso   int64 `json:"enProceso"`
	Pausadas    int64 `json:"pausadas"`
	Completadas int64 `json:"completadas"`
	Canceladas  int64 `json:"canceladas"`
	Correctivas int64 `json:"correctivas"`
	Preventivas int64 `json:"preventivas"`
}

func (r *OrdenRepository) Estadisticas(ctx context.Context) (*EstadisticasOrdenes, error) {
	type fila struct {
		Estado domain.EstadoOrden
		Tipo   domain.TipoOrden
		Cnt    int64
	}
	var filas []fila
	tx := r.db.WithContext(ctx).Model(&domain.Orden{}).
		Select("estado, tipo, COUNT(*) AS cnt").
		Group("estado, tipo").
		Scan(&filas)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var stats EstadisticasOrdenes
	for _, f := range filas {
		stats.Total += f.Cnt
		switch f.Estado {
		case domain.OrdenPendiente:
			stats.Pendientes += f.Cnt
		case domain.OrdenEnProceso:
			stats.EnProceso += f.Cnt
		case domain.OrdenPausada:
			stats.Pausadas += f.Cnt
		case domain.OrdenCompletada:
			stats.Completadas += f.Cnt
		case domain.OrdenCancelada:
			stats.Canceladas += f.Cnt
		}
		switch f.Tipo {
		case domain.OrdenCorrectiva:
			stats.Correctivas += f.Cnt
		case domain.OrdenPreventiva:
			stats.Preventivas += f.Cnt
		}
	}
	return &stats, nil
}
