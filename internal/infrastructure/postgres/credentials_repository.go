package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

var _ repository.CredentialsRepository = (*CredentialsRepo)(nil)

// CredentialsRepo implementa CredentialsRepository sobre PostgreSQL.
// Los tres registros (SOL, API, certificado) se upsertan por company_id:
// cada empresa tiene a lo sumo uno de cada tipo.
type CredentialsRepo struct {
	q Querier
}

func NewCredentialsRepository(q Querier) *CredentialsRepo {
	return &CredentialsRepo{q: q}
}

func (r *CredentialsRepo) UpsertCredentials(ctx context.Context, c *entity.CompanyCredentials) error {
	const q = `
		INSERT INTO company_credentials
			(id, company_id, sol_user, sol_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE
		SET sol_user = EXCLUDED.sol_user,
		    sol_password = EXCLUDED.sol_password,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.CompanyID, c.SolUser, c.SolPassword, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company_credentials: %w", err)
	}
	return nil
}

func (r *CredentialsRepo) GetCredentials(ctx context.Context, companyID string) (*entity.CompanyCredentials, error) {
	const q = `
		SELECT id, company_id, sol_user, sol_password, created_at, updated_at
		FROM company_credentials WHERE company_id = $1`
	var c entity.CompanyCredentials
	err := r.q.QueryRow(ctx, q, companyID).Scan(
		&c.ID, &c.CompanyID, &c.SolUser, &c.SolPassword, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_credentials: %w", err)
	}
	return &c, nil
}

func (r *CredentialsRepo) UpsertAPICredentials(ctx context.Context, c *entity.CompanyAPICredentials) error {
	const q = `
		INSERT INTO company_api_credentials
			(id, company_id, client_id, client_secret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_id) DO UPDATE
		SET client_id = EXCLUDED.client_id,
		    client_secret = EXCLUDED.client_secret,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.CompanyID, c.ClientID, c.ClientSecret, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company_api_credentials: %w", err)
	}
	return nil
}

func (r *CredentialsRepo) GetAPICredentials(ctx context.Context, companyID string) (*entity.CompanyAPICredentials, error) {
	const q = `
		SELECT id, company_id, client_id, client_secret, created_at, updated_at
		FROM company_api_credentials WHERE company_id = $1`
	var c entity.CompanyAPICredentials
	err := r.q.QueryRow(ctx, q, companyID).Scan(
		&c.ID, &c.CompanyID, &c.ClientID, &c.ClientSecret, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_api_credentials: %w", err)
	}
	return &c, nil
}

func (r *CredentialsRepo) UpsertCertificate(ctx context.Context, c *entity.CompanyCertificate) error {
	const q = `
		INSERT INTO company_certificates
			(id, company_id, certificate_path, certificate_password,
			 certificate_pem, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id) DO UPDATE
		SET certificate_path = EXCLUDED.certificate_path,
		    certificate_password = EXCLUDED.certificate_password,
		    certificate_pem = EXCLUDED.certificate_pem,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.CompanyID, c.CertificatePath, c.CertificatePassword,
		c.CertificatePEM, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert company_certificates: %w", err)
	}
	return nil
}

func (r *CredentialsRepo) GetCertificate(ctx context.Context, companyID string) (*entity.CompanyCertificate, error) {
	const q = `
		SELECT id, company_id, certificate_path, certificate_password,
		       certificate_pem, created_at, updated_at
		FROM company_certificates WHERE company_id = $1`
	var c entity.CompanyCertificate
	err := r.q.QueryRow(ctx, q, companyID).Scan(
		&c.ID, &c.CompanyID, &c.CertificatePath, &c.CertificatePassword,
		&c.CertificatePEM, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company_certificates: %w", err)
	}
	return &c, nil
}
