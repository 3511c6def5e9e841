// Package numbering implementa el registro de series y la asignación de
// correlativos para comprobantes electrónicos: el registro valida la
// convención de nombres SUNAT por tipo de documento, y el asignador emite
// números secuenciales sin duplicados bajo concurrencia.
package numbering

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
	"github.com/RobertArzolaC/arka/internal/domain/sunat"
	pkgsunat "github.com/RobertArzolaC/arka/pkg/sunat"
)

// RegistryUseCase registra series de numeración por sucursal, validando la
// convención de prefijos y la unicidad de (sucursal, tipo, serie).
type RegistryUseCase struct {
	branchRepo repository.BranchRepository
	seriesRepo repository.DocumentSeriesRepository
	tx         SeriesTxRunner
}

// NewRegistryUseCase construye el caso de uso de registro de series.
func NewRegistryUseCase(branchRepo repository.BranchRepository, seriesRepo repository.DocumentSeriesRepository, tx SeriesTxRunner) *RegistryUseCase {
	return &RegistryUseCase{branchRepo: branchRepo, seriesRepo: seriesRepo, tx: tx}
}

// Register valida y persiste una serie nueva para la sucursal.
//
// El código se normaliza a mayúsculas antes de validar. La verificación de
// duplicado y el insert ocurren dentro de una misma transacción; el índice
// único parcial de la tabla cubre la carrera entre registros concurrentes
// (la violación 23505 también se reporta como duplicado).
func (uc *RegistryUseCase) Register(ctx context.Context, branchID string, in dto.RegisterSeriesRequest) (*dto.SeriesResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	code := sunat.NormalizeSeriesCode(in.SeriesCode)
	if err := sunat.ValidateSeriesCode(in.DocumentType, code); err != nil {
		return nil, err
	}
	starting := in.StartingCorrelative
	if starting == 0 {
		starting = 1
	}
	if err := sunat.ValidateStartingCorrelative(starting); err != nil {
		return nil, err
	}

	now := time.Now()
	series := &entity.DocumentSeries{
		ID:                 uuid.New().String(),
		BranchID:           branchID,
		DocumentType:       in.DocumentType,
		SeriesCode:         code,
		CurrentCorrelative: starting,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = uc.tx.RunSeries(ctx, func(repo repository.DocumentSeriesRepository) error {
		existing, err := repo.GetActive(ctx, branchID, in.DocumentType, code)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return repo.Create(ctx, series)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("series_code",
				"ya existe una serie %s activa para este tipo de comprobante en la sucursal", code)
		}
		return nil, err
	}
	return toSeriesResponse(series), nil
}

// ListByBranch lista las series activas de una sucursal.
func (uc *RegistryUseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.SeriesResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.seriesRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SeriesResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSeriesResponse(s))
	}
	return out, nil
}

// Get obtiene una serie activa por ID.
func (uc *RegistryUseCase) Get(ctx context.Context, seriesID string) (*dto.SeriesResponse, error) {
	series, err := uc.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if series == nil || series.IsRemoved {
		return nil, domain.ErrNotFound
	}
	return toSeriesResponse(series), nil
}

// Remove marca una serie como eliminada. La serie queda fuera de búsquedas
// activas pero se retiene para auditoría; su correlativo no se reutiliza.
func (uc *RegistryUseCase) Remove(ctx context.Context, seriesID string) error {
	series, err := uc.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return err
	}
	if series == nil || series.IsRemoved {
		return domain.ErrNotFound
	}
	return uc.seriesRepo.SoftDelete(ctx, seriesID)
}

func toSeriesResponse(s *entity.DocumentSeries) *dto.SeriesResponse {
	if s == nil {
		return nil
	}
	return &dto.SeriesResponse{
		ID:                 s.ID,
		BranchID:           s.BranchID,
		DocumentType:       s.DocumentType,
		DocumentTypeName:   pkgsunat.DocumentTypeName(s.DocumentType),
		SeriesCode:         s.SeriesCode,
		CurrentCorrelative: s.CurrentCorrelative,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
