package cliente

import "tallervehicular/internal/domain"

type ClienteRequest struct {
	TipoDocumento   domain.TipoDocumento `json:"tipoDocumento" binding:"required"`
	NumeroDocumento string               `json:"numeroDocumento" binding:"required"`
	Nombres         string               `json:"nombres"`
	Apellidos       string               `json:"apellidos"`
	RazonSocial     string               `json:"razonSocial"`
	Telefono        string               `json:"telefono"`
	Email           string               `json:"email"`
	Direccion       string               `json:"direccion"`
}

func (r ClienteRequest) aDominio() *domain.Cliente {
	return &domain.Cliente{
		TipoDocumento:   r.TipoDocumento,
		NumeroDocumento: r.NumeroDocumento,
		Nombres:         r.Nombres,
		Apellidos:       r.Apellidos,
		RazonSocial:     r.RazonSocial,
		Telefono:        r.Telefono,
		Email:           r.Email,
		Direccion:       r.Direccion,
	}
}

// PadronRUC is the registry answer for a business RUC.
type PadronRUC struct {
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razonSocial"`
	Estado      string `json:"estado"`
	Condicion   string `json:"condicion"`
	Direccion   string `json:"direccion"`
}

// PadronDNI is the registry answer for a natural person.
type PadronDNI struct {
	DNI             string `json:"dni"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
}
