package repository

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/entity"
)

// DocumentSeriesRepository define el puerto de persistencia para series de
// numeración de comprobantes.
type DocumentSeriesRepository interface {
	Create(ctx context.Context, series *entity.DocumentSeries) error
	GetByID(ctx context.Context, id string) (*entity.DocumentSeries, error)

	// GetActive busca una serie no eliminada por (sucursal, tipo, código).
	GetActive(ctx context.Context, branchID, docType, seriesCode string) (*entity.DocumentSeries, error)

	ListByBranch(ctx context.Context, branchID string) ([]*entity.DocumentSeries, error)
	SoftDelete(ctx context.Context, id string) error

	// AllocateNext lee e incrementa el correlativo de la serie como una sola
	// unidad atómica (UPDATE ... RETURNING sobre una única fila) y devuelve el
	// valor emitido. Retorna domain.ErrNotFound si la serie no existe o fue
	// eliminada, y domain.ErrConflict ante contención transitoria reintentable
	// por el caller.
	AllocateNext(ctx context.Context, seriesID string) (int64, error)
}
