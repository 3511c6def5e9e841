package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementa CompanyRepository sobre PostgreSQL (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, domain, ruc, regime, business_name, commercial_name,
		address, phone, email, square_logo_path, rectangular_logo_path,
		is_removed, created_at, updated_at`

// Create persiste una empresa nueva.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	const q = `
		INSERT INTO companies
			(id, domain, ruc, regime, business_name, commercial_name,
			 address, phone, email, square_logo_path, rectangular_logo_path,
			 is_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false, $12, $13)`
	_, err := r.q.Exec(ctx, q,
		c.ID, c.Domain, c.RUC, c.Regime, c.BusinessName, c.CommercialName,
		c.Address, c.Phone, c.Email, c.SquareLogoPath, c.RectangularLogo,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa activa por ID. Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND is_removed = false`
	c, err := scanCompany(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return c, nil
}

// GetByDomain busca una empresa activa por su subdominio de acceso.
func (r *CompanyRepo) GetByDomain(ctx context.Context, dom string) (*entity.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE domain = $1 AND is_removed = false`
	c, err := scanCompany(r.q.QueryRow(ctx, q, dom))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by domain: %w", err)
	}
	return c, nil
}

// GetByRUC busca una empresa activa por RUC.
func (r *CompanyRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Company, error) {
	q := `SELECT ` + companyColumns + ` FROM companies WHERE ruc = $1 AND is_removed = false`
	c, err := scanCompany(r.q.QueryRow(ctx, q, ruc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by ruc: %w", err)
	}
	return c, nil
}

// List lista empresas activas ordenadas por razón social, con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	q := `SELECT ` + companyColumns + `
		FROM companies
		WHERE is_removed = false
		ORDER BY business_name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una empresa.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	const q = `
		UPDATE companies
		SET regime = $2, business_name = $3, commercial_name = $4,
		    address = $5, phone = $6, email = $7,
		    square_logo_path = $8, rectangular_logo_path = $9, updated_at = now()
		WHERE id = $1 AND is_removed = false`
	tag, err := r.q.Exec(ctx, q,
		c.ID, c.Regime, c.BusinessName, c.CommercialName,
		c.Address, c.Phone, c.Email, c.SquareLogoPath, c.RectangularLogo,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la empresa como eliminada.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE companies SET is_removed = true, updated_at = now() WHERE id = $1 AND is_removed = false`
	tag, err := r.q.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("soft delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCompany(row pgxScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Domain, &c.RUC, &c.Regime, &c.BusinessName, &c.CommercialName,
		&c.Address, &c.Phone, &c.Email, &c.SquareLogoPath, &c.RectangularLogo,
		&c.IsRemoved, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
