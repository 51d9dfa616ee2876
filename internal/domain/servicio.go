package domain

import "time"

// Servicio is a catalog item. Normal flow disables via Activo; the hard
// delete endpoint still exists.
type Servicio struct {
	ID             int64     `json:"id"`
	Codigo         string    `json:"codigo" gorm:"uniqueIndex" validate:"required"`
	Nombre         string    `json:"nombre" validate:"required"`
	Descripcion    string    `json:"descripcion,omitempty" gorm:"type:text"`
	TiempoEstimado int       `json:"tiempoEstimado"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Servicio) TableName() string { return "servicios" }
