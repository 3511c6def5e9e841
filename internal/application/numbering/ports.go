package numbering

import (
	"context"

	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

// SeriesTxRunner ejecuta una función dentro de una transacción de BD, pasando
// un repositorio de series atado a esa tx. Garantiza que la verificación de
// duplicados y el insert del registro de series sean una sola unidad atómica.
type SeriesTxRunner interface {
	RunSeries(ctx context.Context, fn func(seriesRepo repository.DocumentSeriesRepository) error) error
}
