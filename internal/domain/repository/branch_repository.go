package repository

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)

	// GetByCompanyAndCode busca una sucursal activa por empresa y código SUNAT.
	GetByCompanyAndCode(ctx context.Context, companyID, sunatCode string) (*entity.Branch, error)

	ListByCompany(ctx context.Context, companyID string) ([]*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	SoftDelete(ctx context.Context, id string) error
}
