package repository

import (
	"context"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type ServicioRepository struct {
	db *gorm.DB
}

func NewServicioRepository(db *gorm.DB) *ServicioRepository {
	return &ServicioRepository{db: db}
}

func (r *ServicioRepository) List(ctx context.Context) ([]domain.Servicio, error) {
	var servicios []domain.Servicio
	tx := r.db.WithContext(ctx).Order("id").Find(&servicios)
	return servicios, tx.Error
}

func (r *ServicioRepository) ListActivos(ctx context.Context) ([]domain.Servicio, error) {
	var servicios []domain.Servicio
	tx := r.db.WithContext(ctx).Where("activo = ?", true).Order("id").Find(&servicios)
	return servicios, tx.Error
}

func (r *ServicioRepository) GetByID(ctx context.Context, id int64) (*domain.Servicio, error) {
	var servicio domain.Servicio
	tx := r.db.WithContext(ctx).First(&servicio, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &servicio, nil
}

func (r *ServicioRepository) ExistsCodigo(ctx context.Context, codigo string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Servicio{}).
		Where("codigo = ? AND id <> ?", codigo, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ServicioRepository) Create(ctx context.Context, servicio *domain.Servicio) error {
	return r.db.WithContext(ctx).Create(servicio).Error
}

func (r *ServicioRepository) Update(ctx context.Context, servicio *domain.Servicio) error {
	return r.db.WithContext(ctx).Save(servicio).Error
}

func (r *ServicioRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Servicio{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
