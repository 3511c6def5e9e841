package usecase

import (
	"context"
	"time"

	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

// CompanyTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la creación de la empresa y de su
// sucursal Principal sean una sola unidad atómica.
type CompanyTxRunner interface {
	RunCompany(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		branchRepo repository.BranchRepository,
	) error) error
}

// CertificateConverter convierte un certificado .pfx/.p12 al formato PEM que
// exige SUNAT y expone los datos del certificado hoja. La implementación vive
// en infrastructure.
type CertificateConverter interface {
	ConvertToPEM(pfxData []byte, password string) (string, error)

	// Inspect devuelve el titular (subject) y la fecha de expiración del
	// certificado hoja contenido en el PEM.
	Inspect(pemData string) (subject string, notAfter time.Time, err error)
}
