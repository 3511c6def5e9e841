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

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   CompanyTxRunner
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia y el
// runner transaccional para la creación atómica empresa + sucursal Principal.
func NewCompanyUseCase(repo repository.CompanyRepository, tx CompanyTxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create crea una empresa nueva junto con su sucursal Principal (código 0000),
// que hereda dirección y contacto de la empresa, en una sola transacción.
// Valida RUC (módulo 11), régimen y dominio; si el dominio viene vacío se
// sugiere uno a partir del nombre comercial.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := sunat.ValidateRUC(in.RUC); err != nil {
		return nil, err
	}
	if err := sunat.ValidateRegime(in.Regime); err != nil {
		return nil, err
	}
	dom := in.Domain
	if dom == "" {
		name := in.CommercialName
		if name == "" {
			name = in.BusinessName
		}
		dom = sunat.SuggestDomain(name)
	}
	if err := sunat.ValidateDomain(dom); err != nil {
		return nil, err
	}

	if existing, err := uc.repo.GetByDomain(ctx, dom); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewValidationError("domain", "el dominio %s ya está en uso", dom)
	}
	if existing, err := uc.repo.GetByRUC(ctx, in.RUC); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.NewValidationError("ruc", "ya existe una empresa con el RUC %s", in.RUC)
	}

	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		Domain:         dom,
		RUC:            in.RUC,
		Regime:         in.Regime,
		BusinessName:   in.BusinessName,
		CommercialName: in.CommercialName,
		Address:        in.Address,
		Phone:          in.Phone,
		Email:          in.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	principal := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      "Principal",
		SunatCode: entity.PrincipalBranchCode,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.RunCompany(ctx, func(companyRepo repository.CompanyRepository, branchRepo repository.BranchRepository) error {
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return branchRepo.Create(ctx, principal)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa activa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas activas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza campos editables de una empresa. El RUC y el dominio no se
// modifican una vez creados.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Regime != nil {
		if err := sunat.ValidateRegime(*in.Regime); err != nil {
			return nil, err
		}
		company.Regime = *in.Regime
	}
	if in.BusinessName != nil {
		company.BusinessName = *in.BusinessName
	}
	if in.CommercialName != nil {
		company.CommercialName = *in.CommercialName
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete marca la empresa como eliminada (soft-delete).
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) error {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Domain:         c.Domain,
		RUC:            c.RUC,
		Regime:         c.Regime,
		BusinessName:   c.BusinessName,
		CommercialName: c.CommercialName,
		Address:        c.Address,
		Phone:          c.Phone,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
