package entity

import "time"

// CompanyCredentials credenciales SOL para emisión de documentos electrónicos SUNAT.
// Una por empresa (clave usuario secundario SOL).
type CompanyCredentials struct {
	ID          string
	CompanyID   string
	SolUser     string
	SolPassword string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CompanyAPICredentials credenciales API para guías de remisión electrónicas SUNAT.
type CompanyAPICredentials struct {
	ID           string
	CompanyID    string
	ClientID     string
	ClientSecret string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CompanyCertificate certificado digital para firmar documentos electrónicos.
// CertificatePEM es la conversión a PEM del .pfx/.p12 subido, lista para SUNAT.
type CompanyCertificate struct {
	ID                  string
	CompanyID           string
	CertificatePath     string // ruta del archivo .pfx/.p12 original
	CertificatePassword string
	CertificatePEM      string // certificado + llave privada en formato PEM
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
