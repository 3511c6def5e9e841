package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RobertArzolaC/arka/internal/application/numbering"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

var _ usecase.CompanyTxRunner = (*TxRunner)(nil)
var _ numbering.SeriesTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCompany inicia una transacción con repos de empresa y sucursal atados a la
// tx y hace Commit o Rollback (creación atómica empresa + sucursal Principal).
func (r *TxRunner) RunCompany(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	branchRepo repository.BranchRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCompanyRepository(tx), NewBranchRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSeries inicia una transacción con un repo de series atado a la tx
// (verificación de duplicado + insert del registro de series como una unidad).
func (r *TxRunner) RunSeries(ctx context.Context, fn func(
	seriesRepo repository.DocumentSeriesRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentSeriesRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
