package repository

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// CredentialsRepository define el puerto de persistencia para las credenciales
// de emisión electrónica de una empresa (SOL, API y certificado digital).
// Cada empresa tiene a lo sumo un registro de cada tipo (upsert por company_id).
type CredentialsRepository interface {
	UpsertCredentials(ctx context.Context, creds *entity.CompanyCredentials) error
	GetCredentials(ctx context.Context, companyID string) (*entity.CompanyCredentials, error)

	UpsertAPICredentials(ctx context.Context, creds *entity.CompanyAPICredentials) error
	GetAPICredentials(ctx context.Context, companyID string) (*entity.CompanyAPICredentials, error)

	UpsertCertificate(ctx context.Context, cert *entity.CompanyCertificate) error
	GetCertificate(ctx context.Context, companyID string) (*entity.CompanyCertificate, error)
}
