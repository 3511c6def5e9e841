package repository

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error)

	// FindByEmail busca por email global (para login sin conocer la empresa).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
