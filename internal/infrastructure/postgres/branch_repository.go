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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementa BranchRepository sobre PostgreSQL (usable con pool o tx).
type BranchRepo struct {
	q Querier
}

// NewBranchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

const branchColumns = `id, company_id, name, description, sunat_code,
		address, phone, email, website, is_removed, created_at, updated_at`

// Create persiste una sucursal nueva.
func (r *BranchRepo) Create(ctx context.Context, b *entity.Branch) error {
	const q = `
		INSERT INTO branches
			(id, company_id, name, description, sunat_code,
			 address, phone, email, website, is_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, $10, $11)`
	_, err := r.q.Exec(ctx, q,
		b.ID, b.CompanyID, b.Name, b.Description, b.SunatCode,
		b.Address, b.Phone, b.Email, b.Website, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal activa por ID. Devuelve nil, nil si no existe.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	q := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1 AND is_removed = false`
	b, err := scanBranch(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by id: %w", err)
	}
	return b, nil
}

// GetByCompanyAndCode busca una sucursal activa por empresa y código SUNAT.
func (r *BranchRepo) GetByCompanyAndCode(ctx context.Context, companyID, sunatCode string) (*entity.Branch, error) {
	q := `SELECT ` + branchColumns + `
		FROM branches
		WHERE company_id = $1 AND sunat_code = $2 AND is_removed = false`
	b, err := scanBranch(r.q.QueryRow(ctx, q, companyID, sunatCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch by company and code: %w", err)
	}
	return b, nil
}

// ListByCompany lista las sucursales activas de una empresa ordenadas por código.
func (r *BranchRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Branch, error) {
	q := `SELECT ` + branchColumns + `
		FROM branches
		WHERE company_id = $1 AND is_removed = false
		ORDER BY sunat_code`
	rows, err := r.q.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una sucursal (sunat_code inmutable).
func (r *BranchRepo) Update(ctx context.Context, b *entity.Branch) error {
	const q = `
		UPDATE branches
		SET name = $2, description = $3, address = $4, phone = $5,
		    email = $6, website = $7, updated_at = now()
		WHERE id = $1 AND is_removed = false`
	tag, err := r.q.Exec(ctx, q,
		b.ID, b.Name, b.Description, b.Address, b.Phone, b.Email, b.Website,
	)
	if err != nil {
		return fmt.Errorf("update branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la sucursal como eliminada.
func (r *BranchRepo) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE branches SET is_removed = true, updated_at = now() WHERE id = $1 AND is_removed = false`
	tag, err := r.q.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("soft delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBranch(row pgxScanner) (*entity.Branch, error) {
	var b entity.Branch
	err := row.Scan(
		&b.ID, &b.CompanyID, &b.Name, &b.Description, &b.SunatCode,
		&b.Address, &b.Phone, &b.Email, &b.Website,
		&b.IsRemoved, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
