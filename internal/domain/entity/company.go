package entity

import "time"

// Company representa una empresa/tenant del sistema (multi-tenant, enfoque Perú).
// El campo Domain es el subdominio único de acceso al sistema.
type Company struct {
	ID              string
	Domain          string // subdominio único: solo alfanuméricos y guiones
	RUC             string // RUC de 11 dígitos con dígito verificador SUNAT
	Regime          string // régimen tributario: ver pkg/sunat (ESPECIAL, GENERAL, MYPE, RUS)
	BusinessName    string // razón social
	CommercialName  string // nombre comercial
	Address         string
	Phone           string
	Email           string
	SquareLogoPath  string // logo cuadrado (recomendado 150x150)
	RectangularLogo string // logo rectangular (recomendado 350x167)
	IsRemoved       bool   // soft-delete: excluida de listados activos, retenida para auditoría
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName devuelve el nombre comercial, o la razón social si no hay comercial.
func (c *Company) DisplayName() string {
	if c.CommercialName != "" {
		return c.CommercialName
	}
	return c.BusinessName
}
