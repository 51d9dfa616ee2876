package repository

import (
	"context"

	"tallervehicular/internal/domain"

	"gorm.io/gorm"
)

type ClienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{db: db}
}

func (r *ClienteRepository) List(ctx context.Context) ([]domain.Cliente, error) {
	var clientes []domain.Cliente
	tx := r.db.WithContext(ctx).Preload("Vehiculos").Order("id").Find(&clientes)
	return clientes, tx.Error
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	var cliente domain.Cliente
	tx := r.db.WithContext(ctx).Preload("Vehiculos").First(&cliente, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &cliente, nil
}

func (r *ClienteRepository) GetByDocumento(ctx context.Context, numero string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	tx := r.db.WithContext(ctx).Preload("Vehiculos").
		Where("numero_documento = ?", numero).
		First(&cliente)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &cliente, nil
}

func (r *ClienteRepository) GetByRUC(ctx context.Context, ruc string) (*domain.Cliente, error) {
	var cliente domain.Cliente
	tx := r.db.WithContext(ctx).Preload("Vehiculos").
		Where("tipo_documento = ? AND numero_documento = ?", domain.DocumentoRUC, ruc).
		First(&cliente)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &cliente, nil
}

// Search matches the free-text query against names, document number and
// business name.
func (r *ClienteRepository) Search(ctx context.Context, q string) ([]domain.Cliente, error) {
	like := "%" + q + "%"

	var clientes []domain.Cliente
	tx := r.db.WithContext(ctx).Preload("Vehiculos").
		Where("nombres LIKE ? OR apellidos LIKE ? OR razon_social LIKE ? OR numero_documento LIKE ?",
			like, like, like, like).
		Order("id").
		Find(&clientes)
	return clientes, tx.Error
}

func (r *ClienteRepository) ExistsDocumento(ctx context.Context, numero string, excludeID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&domain.Cliente{}).
		Where("numero_documento = ? AND id <> ?", numero, excludeID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *ClienteRepository) Update(ctx context.Context, cliente *domain.Cliente) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Cliente{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
