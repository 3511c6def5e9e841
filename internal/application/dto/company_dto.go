package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
// Si Domain viene vacío se sugiere uno a partir del nombre comercial.
type CreateCompanyRequest struct {
	Domain         string `json:"domain" validate:"omitempty,max=100"`
	RUC            string `json:"ruc" validate:"required"`
	Regime         string `json:"regime" validate:"required,oneof=ESPECIAL GENERAL MYPE RUS"`
	BusinessName   string `json:"business_name" validate:"required,min=1,max=255"`
	CommercialName string `json:"commercial_name" validate:"omitempty,max=255"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Regime         *string `json:"regime" validate:"omitempty,oneof=ESPECIAL GENERAL MYPE RUS"`
	BusinessName   *string `json:"business_name" validate:"omitempty,min=1,max=255"`
	CommercialName *string `json:"commercial_name" validate:"omitempty,max=255"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID             string    `json:"id"`
	Domain         string    `json:"domain"`
	RUC            string    `json:"ruc"`
	Regime         string    `json:"regime"`
	BusinessName   string    `json:"business_name"`
	CommercialName string    `json:"commercial_name"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SetCredentialsRequest credenciales SOL de emisión electrónica.
type SetCredentialsRequest struct {
	SolUser     string `json:"sol_user" validate:"required,max=100"`
	SolPassword string `json:"sol_password" validate:"required,max=255"`
}

// SetAPICredentialsRequest credenciales API para guías de remisión.
type SetAPICredentialsRequest struct {
	ClientID     string `json:"client_id" validate:"required,max=255"`
	ClientSecret string `json:"client_secret" validate:"required,max=255"`
}

// CertificateResponse estado del certificado digital de la empresa.
// Nunca expone la contraseña ni la llave privada.
type CertificateResponse struct {
	CompanyID string     `json:"company_id"`
	HasPEM    bool       `json:"has_pem"`
	Subject   string     `json:"subject,omitempty"`
	NotAfter  *time.Time `json:"not_after,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}
