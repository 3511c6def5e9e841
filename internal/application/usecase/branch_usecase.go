package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
	"github.com/RobertArzolaC/arka/internal/domain/sunat"
)

// BranchUseCase aplica reglas de negocio para sucursales.
type BranchUseCase struct {
	repo        repository.BranchRepository
	companyRepo repository.CompanyRepository
}

// NewBranchUseCase construye el caso de uso de sucursales.
func NewBranchUseCase(repo repository.BranchRepository, companyRepo repository.CompanyRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una sucursal para la empresa. El código SUNAT debe tener 4
// dígitos y ser único entre las sucursales activas de la empresa.
func (uc *BranchUseCase) Create(ctx context.Context, companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if err := sunat.ValidateBranchCode(in.SunatCode); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndCode(ctx, companyID, in.SunatCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("sunat_code",
			"ya existe una sucursal con el código %s en esta empresa", in.SunatCode)
	}

	now := time.Now()
	branch := &entity.Branch{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		SunatCode:   in.SunatCode,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return entityToBranchResponse(branch), nil
}

// GetByID obtiene una sucursal activa por ID.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return entityToBranchResponse(branch), nil
}

// ListByCompany lista las sucursales activas de una empresa.
func (uc *BranchUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.BranchResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *entityToBranchResponse(b))
	}
	return out, nil
}

// Update actualiza campos editables de una sucursal (el código SUNAT es inmutable).
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		branch.Name = *in.Name
	}
	if in.Description != nil {
		branch.Description = *in.Description
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Email != nil {
		branch.Email = *in.Email
	}
	if in.Website != nil {
		branch.Website = *in.Website
	}
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return entityToBranchResponse(branch), nil
}

// Delete marca una sucursal como eliminada. La sucursal Principal no se elimina.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	branch, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	if branch.SunatCode == entity.PrincipalBranchCode {
		return domain.NewValidationError("sunat_code", "la sucursal Principal no puede eliminarse")
	}
	return uc.repo.SoftDelete(ctx, id)
}

func entityToBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:          b.ID,
		CompanyID:   b.CompanyID,
		Name:        b.Name,
		Description: b.Description,
		SunatCode:   b.SunatCode,
		Address:     b.Address,
		Phone:       b.Phone,
		Email:       b.Email,
		Website:     b.Website,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
