package repository

import (
	"context"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type RepuestoRepository struct {
	db *gorm.DB
}

func NewRepuestoRepository(db *gorm.DB) *RepuestoRepository {
	return &RepuestoRepository{db: db}
}

func (r *RepuestoRepository) List(ctx context.Context) ([]domain.Repuesto, error) {
	var repuestos []domain.Repuesto
	tx := r.db.WithContext(ctx).Order("id").Find(&repuestos)
	return repuestos, tx.Error
}

func (r *RepuestoRepository) ListActivos(ctx context.Context) ([]domain.Repuesto, error) {
	var repuestos []domain.Repuesto
	tx := r.db.WithContext(ctx).Where("activo = ?", true).Order("id").Find(&repuestos)
	return repuestos, tx.Error
}

func (r *RepuestoRepository) ListBajoStock(ctx context.Context) ([]domain.Repuesto, error) {
	var repuestos []domain.Repuesto
	tx := r.db.WithContext(ctx).
		Where("activo = ? AND stock_actual <= stock_minimo", true).
		Order("id").
		Find(&repuestos)
	return repuestos, tx.Error
}

func (r *RepuestoRepository) GetByID(ctx context.Context, id int64) (*domain.Repuesto, error) {
	var repuesto domain.Repuesto
	tx := r.db.WithContext(ctx).First(&repuesto, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &repuesto, nil
}

func (r *RepuestoRepository) ExistsCodigo(ctx context.Context, codigo string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Repuesto{}).
		Where("codigo = ? AND id <> ?", codigo, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *RepuestoRepository) Create(ctx context.Context, repuesto *domain.Repuesto) error {
	return r.db.WithContext(ctx).Create(repuesto).Error
}

func (r *RepuestoRepository) Update(ctx context.Context, repuesto *domain.Repuesto) error {
	return r.db.WithContext(ctx).Save(repuesto).Error
}

func (r *RepuestoRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Repuesto{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RegistrarMovimiento appends the ledger entry and applies its delta to
// the repuesto's stock in one transaction. The stock update is guarded:
// a subtraction that would go negative rolls the whole thing back with
// ErrStockInsuficiente.
func (r *RepuestoRepository) RegistrarMovimiento(ctx context.Context, mov *domain.Movimiento) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return registrarMovimientoTx(tx, mov)
	})
}

func registrarMovimientoTx(tx *gorm.DB, mov *domain.Movimiento) error {
	var repuesto domain.Repuesto
	if err := tx.First(&repuesto, mov.RepuestoID).Error; err != nil {
		return err
	}

	if mov.UsuarioID == nil {
		mov.RegistradoPor = domain.RegistradoSistema
	}

	delta := mov.Delta()
	if repuesto.StockActual+delta < 0 {
		return ErrStockInsuficiente
	}

	if err := tx.Model(&domain.Repuesto{}).
		Where("id = ?", mov.RepuestoID).
		Update("stock_actual", gorm.Expr("stock_actual + ?", delta)).Error; err != nil {
		return err
	}

	return tx.Create(mov).Error
}

func (r *RepuestoRepository) ListMovimientos(ctx context.Context, repuestoID int64) ([]domain.Movimiento, error) {
	q := r.db.WithContext(ctx).Preload("Repuesto").Order("created_at DESC, id DESC")
	if repuestoID != 0 {
		q = q.Where("repuesto_id = ?", repuestoID)
	}

	var movimientos []domain.Movimiento
	tx := q.Find(&movimientos)
	return movimientos, tx.Error
}
