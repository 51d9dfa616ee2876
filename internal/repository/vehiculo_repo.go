package repository

import (
	"context"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type VehiculoRepository struct {
	db *gorm.DB
}

func NewVehiculoRepository(db *gorm.DB) *VehiculoRepository {
	return &VehiculoRepository{db: db}
}

func (r *VehiculoRepository) List(ctx context.Context) ([]domain.Vehiculo, error) {
	var vehiculos []domain.Vehiculo
	tx := r.db.WithContext(ctx).Preload("Cliente").Order("id").Find(&vehiculos)
	return vehiculos, tx.Error
}

func (r *VehiculoRepository) ListByCliente(ctx context.Context, clienteID int64) ([]domain.Vehiculo, error) {
	var vehiculos []domain.Vehiculo
	tx := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("id").
		Find(&vehiculos)
	return vehiculos, tx.Error
}

func (r *VehiculoRepository) GetByID(ctx context.Context, id int64) (*domain.Vehiculo, error) {
	var vehiculo domain.Vehiculo
	tx := r.db.WithContext(ctx).Preload("Cliente").First(&vehiculo, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &vehiculo, nil
}

func (r *VehiculoRepository) GetByPlaca(ctx context.Context, placa string) (*domain.Vehiculo, error) {
	var vehiculo domain.Vehiculo
	tx := r.db.WithContext(ctx).Preload("Cliente").
		Where("placa = ?", placa).
		First(&vehiculo)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &vehiculo, nil
}

func (r *VehiculoRepository) Search(ctx context.Context, q string) ([]domain.Vehiculo, error) {
	like := "%" + q + "%"

	var vehiculos []domain.Vehiculo
	tx := r.db.WithContext(ctx).Preload("Cliente").
		Where("placa LIKE ? OR numero_vehiculo LIKE ? OR marca LIKE ? OR modelo LIKE ?",
			like, like, like, like).
		Order("id").
		Find(&vehiculos)
	return vehiculos, tx.Error
}

func (r *VehiculoRepository) ExistsPlaca(ctx context.Context, placa string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Vehiculo{}).
		Where("placa = ? AND id <> ?", placa, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *VehiculoRepository) Create(ctx context.Context, vehiculo *domain.Vehiculo) error {
	return r.db.WithContext(ctx).Create(vehiculo).Error
}

func (r *VehiculoRepository) Update(ctx context.Context, vehiculo *domain.Vehiculo) error {
	return r.db.WithContext(ctx).Save(vehiculo).Error
}

// Delete removes the vehicle together with its maintenance plan, so no
// plan row is left pointing at a vehicle that no longer exists.
func (r *VehiculoRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehiculo_id = ?", id).Delete(&domain.PlanMantenimiento{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Vehiculo{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
