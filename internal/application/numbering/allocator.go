package numbering

import (
	"context"
	"errors"
	"time"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
	"github.com/RobertArzolaC/arka/internal/domain/sunat"
)

const (
	// maxAllocateAttempts intentos ante contención transitoria (serialization
	// failure / deadlock) antes de reportar servicio no disponible.
	maxAllocateAttempts = 3
	// allocateRetryDelay espera base entre reintentos, lineal por intento.
	allocateRetryDelay = 10 * time.Millisecond
)

// AllocatorUseCase emite el siguiente correlativo de una serie. La lectura y
// el incremento son una sola unidad atómica en el repositorio (UPDATE de una
// única fila con RETURNING); dos callers concurrentes nunca reciben el mismo
// número y series distintas no contienden entre sí.
type AllocatorUseCase struct {
	seriesRepo repository.DocumentSeriesRepository
}

// NewAllocatorUseCase construye el asignador de correlativos.
func NewAllocatorUseCase(seriesRepo repository.DocumentSeriesRepository) *AllocatorUseCase {
	return &AllocatorUseCase{seriesRepo: seriesRepo}
}

// AllocateNext emite el siguiente correlativo de la serie, formateado a 8
// dígitos con ceros a la izquierda. Retorna domain.ErrNotFound si la serie no
// existe o fue eliminada; los conflictos transitorios se reintentan
// internamente y, agotados los intentos, se reporta domain.ErrServiceUnavailable.
//
// Una asignación exitosa es definitiva: si el documento que la consume falla
// después, el número queda como salto tolerado, nunca se reutiliza.
func (uc *AllocatorUseCase) AllocateNext(ctx context.Context, seriesID string) (*dto.AllocationResponse, error) {
	series, err := uc.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	if series == nil || series.IsRemoved {
		return nil, domain.ErrNotFound
	}

	var n int64
	for attempt := 1; ; attempt++ {
		n, err = uc.seriesRepo.AllocateNext(ctx, seriesID)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		if !errors.Is(err, domain.ErrConflict) || attempt == maxAllocateAttempts {
			if errors.Is(err, domain.ErrConflict) {
				return nil, domain.ErrServiceUnavailable
			}
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * allocateRetryDelay):
		}
	}

	correlative := sunat.FormatCorrelative(n)
	return &dto.AllocationResponse{
		SeriesID:    series.ID,
		SeriesCode:  series.SeriesCode,
		Correlative: correlative,
		FullNumber:  series.SeriesCode + "-" + correlative,
	}, nil
}
