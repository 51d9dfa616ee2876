package repository

import (
	"context"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MantenimientoRepository struct {
	db *gorm.DB
}

func NewMantenimientoRepository(db *gorm.DB) *MantenimientoRepository {
	return &MantenimientoRepository{db: db}
}

func (r *MantenimientoRepository) GetByVehiculo(ctx context.Context, vehiculoID int64) (*domain.PlanMantenimiento, error) {
	var plan domain.PlanMantenimiento
	tx := r.db.WithContext(ctx).Where("vehiculo_id = ?", vehiculoID).First(&plan)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &plan, nil
}

// Upsert keeps one plan per vehicle: configuring again replaces the
// policy and the computed next-due triple.
func (r *MantenimientoRepository) Upsert(ctx context.Context, plan *domain.PlanMantenimiento) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vehiculo_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tipo_control",
			"intervalo_kilometraje",
			"intervalo_horas",
			"intervalo_dias",
			"proximo_kilometraje",
			"proximo_horometro",
			"proxima_fecha",
			"ultimo_mantenimiento",
			"updated_at",
		}),
	}).Create(plan).Error
}

func (r *MantenimientoRepository) List(ctx context.Context) ([]domain.PlanMantenimiento, error) {
	var planes []domain.PlanMantenimiento
	tx := r.db.WithContext(ctx).Order("vehiculo_id").Find(&planes)
	return planes, tx.Error
}
