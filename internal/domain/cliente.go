package domain

import (
	"strings"
	"time"
)

type TipoDocumento string

const (
	DocumentoDNI TipoDocumento = "DNI"
	DocumentoRUC TipoDocumento = "RUC"
	DocumentoCE  TipoDocumento = "CE"
)

func (t TipoDocumento) Valido() bool {
	switch t {
	case DocumentoDNI, DocumentoRUC, DocumentoCE:
		return true
	}
	return false
}

// Cliente is a supervisor/driver record. RUC holders are named by
// razonSocial, DNI/CE holders by nombres+apellidos; exactly one naming
// mode is active, see Normalizar.
type Cliente struct {
	ID              int64         `json:"id"`
	TipoDocumento   TipoDocumento `json:"tipoDocumento" validate:"required"`
	NumeroDocumento string        `json:"numeroDocumento" gorm:"uniqueIndex" validate:"required"`
	Nombres         string        `json:"nombres,omitempty"`
	Apellidos       string        `json:"apellidos,omitempty"`
	RazonSocial     string        `json:"razonSocial,omitempty"`
	Telefono        string        `json:"telefono,omitempty"`
	Email           string        `json:"email,omitempty"`
	Direccion       string        `json:"direccion,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Vehiculos []Vehiculo `json:"vehiculos,omitempty" gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }

// NombreCompleto resolves the display name: razonSocial wins when set,
// otherwise "nombres apellidos".
func (c *Cliente) NombreCompleto() string {
	if c.RazonSocial != "" {
		return c.RazonSocial
	}
	return strings.TrimSpace(c.Nombres + " " + c.Apellidos)
}

// Normalizar trims fields and enforces the naming-mode invariant:
// RUC requires razonSocial and backfills nombres from it when empty,
// the other document types require nombres.
func (c *Cliente) Normalizar() error {
	c.NumeroDocumento = strings.TrimSpace(c.NumeroDocumento)
	c.Nombres = strings.TrimSpace(c.Nombres)
	c.Apellidos = strings.TrimSpace(c.Apellidos)
	c.RazonSocial = strings.TrimSpace(c.RazonSocial)
	c.Telefono = strings.TrimSpace(c.Telefono)
	c.Email = strings.TrimSpace(c.Email)
	c.Direccion = strings.TrimSpace(c.Direccion)

	if !c.TipoDocumento.Valido() {
		return ErrTipoDocumentoInvalido
	}
	if c.NumeroDocumento == "" {
		return ErrDocumentoRequerido
	}

	if c.TipoDocumento == DocumentoRUC {
		if c.RazonSocial == "" {
			return ErrRazonSocialRequerida
		}
		if c.Nombres == "" {
			c.Nombres = c.RazonSocial
		}
		return nil
	}

	c.RazonSocial = ""
	if c.Nombres == "" {
		return ErrNombresRequeridos
	}
	return nil
}
