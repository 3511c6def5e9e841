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

var _ repository.DocumentSeriesRepository = (*DocumentSeriesRepo)(nil)

// DocumentSeriesRepo implementa DocumentSeriesRepository sobre PostgreSQL
// (usable con pool o tx).
type DocumentSeriesRepo struct {
	q Querier
}

// NewDocumentSeriesRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentSeriesRepository(q Querier) *DocumentSeriesRepo {
	return &DocumentSeriesRepo{q: q}
}

const seriesColumns = `id, branch_id, document_type, series_code,
		current_correlative, is_removed, created_at, updated_at`

// Create persiste una serie nueva. El índice único parcial
// (branch_id, document_type, series_code) WHERE NOT is_removed respalda la
// unicidad entre series activas; su violación se reporta como ErrDuplicate.
func (r *DocumentSeriesRepo) Create(ctx context.Context, s *entity.DocumentSeries) error {
	const q = `
		INSERT INTO document_series
			(id, branch_id, document_type, series_code, current_correlative,
			 is_removed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, $7)`
	_, err := r.q.Exec(ctx, q,
		s.ID, s.BranchID, s.DocumentType, s.SeriesCode, s.CurrentCorrelative,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document_series: %w", err)
	}
	return nil
}

// GetByID obtiene una serie por ID (incluye eliminadas; el caller decide).
func (r *DocumentSeriesRepo) GetByID(ctx context.Context, id string) (*entity.DocumentSeries, error) {
	q := `SELECT ` + seriesColumns + ` FROM document_series WHERE id = $1`
	s, err := scanSeries(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document_series by id: %w", err)
	}
	return s, nil
}

// GetActive busca una serie no eliminada por (sucursal, tipo, código).
func (r *DocumentSeriesRepo) GetActive(ctx context.Context, branchID, docType, seriesCode string) (*entity.DocumentSeries, error) {
	q := `SELECT ` + seriesColumns + `
		FROM document_series
		WHERE branch_id = $1 AND document_type = $2 AND series_code = $3
		  AND is_removed = false`
	s, err := scanSeries(r.q.QueryRow(ctx, q, branchID, docType, seriesCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active document_series: %w", err)
	}
	return s, nil
}

// ListByBranch lista las series activas de una sucursal.
func (r *DocumentSeriesRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.DocumentSeries, error) {
	q := `SELECT ` + seriesColumns + `
		FROM document_series
		WHERE branch_id = $1 AND is_removed = false
		ORDER BY document_type, series_code`
	rows, err := r.q.Query(ctx, q, branchID)
	if err != nil {
		return nil, fmt.Errorf("list document_series: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentSeries
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document_series: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SoftDelete marca la serie como eliminada; el correlativo se conserva y no se
// reutiliza aunque luego se registre otra serie con el mismo código.
func (r *DocumentSeriesRepo) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE document_series SET is_removed = true, updated_at = now() WHERE id = $1 AND is_removed = false`
	tag, err := r.q.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("soft delete document_series: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AllocateNext lee e incrementa el correlativo como una sola sentencia sobre la
// fila de la serie: el UPDATE toma el bloqueo de fila, de modo que dos callers
// concurrentes se serializan y nunca reciben el mismo número. RETURNING
// current_correlative - 1 devuelve el valor emitido. Series de sucursales o
// tipos distintos no contienden: se toca exactamente una fila.
func (r *DocumentSeriesRepo) AllocateNext(ctx context.Context, seriesID string) (int64, error) {
	const q = `
		UPDATE document_series
		SET current_correlative = current_correlative + 1, updated_at = now()
		WHERE id = $1 AND is_removed = false
		RETURNING current_correlative - 1`
	var issued int64
	err := r.q.QueryRow(ctx, q, seriesID).Scan(&issued)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		if isTransientConflict(err) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("allocate next correlative: %w", err)
	}
	return issued, nil
}

func scanSeries(row pgxScanner) (*entity.DocumentSeries, error) {
	var s entity.DocumentSeries
	err := row.Scan(
		&s.ID, &s.BranchID, &s.DocumentType, &s.SeriesCode,
		&s.CurrentCorrelative, &s.IsRemoved, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
