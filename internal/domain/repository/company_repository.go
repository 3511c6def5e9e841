package repository

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los métodos Get* devuelven
// (nil, nil) cuando no hay registro activo.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByDomain(ctx context.Context, domain string) (*entity.Company, error)
	GetByRUC(ctx context.Context, ruc string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error

	// SoftDelete marca la empresa como eliminada; se conserva para auditoría.
	SoftDelete(ctx context.Context, id string) error
}
