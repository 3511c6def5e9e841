package numbering_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/application/numbering"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeSeriesRepo implementa DocumentSeriesRepository sobre un mapa protegido
// por mutex; AllocateNext reproduce la semántica atómica del UPDATE de una fila.
type fakeSeriesRepo struct {
	mu     sync.Mutex
	series map[string]*entity.DocumentSeries

	// conflictsLeft fuerza ErrConflict en las próximas N asignaciones para
	// ejercitar los reintentos del asignador.
	conflictsLeft int
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{series: make(map[string]*entity.DocumentSeries)}
}

func (f *fakeSeriesRepo) Create(_ context.Context, s *entity.DocumentSeries) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.series {
		if !existing.IsRemoved && existing.BranchID == s.BranchID &&
			existing.DocumentType == s.DocumentType && existing.SeriesCode == s.SeriesCode {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	f.series[s.ID] = &cp
	return nil
}

func (f *fakeSeriesRepo) GetByID(_ context.Context, id string) (*entity.DocumentSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.series[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSeriesRepo) GetActive(_ context.Context, branchID, docType, code string) (*entity.DocumentSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.series {
		if !s.IsRemoved && s.BranchID == branchID && s.DocumentType == docType && s.SeriesCode == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSeriesRepo) ListByBranch(_ context.Context, branchID string) ([]*entity.DocumentSeries, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.DocumentSeries
	for _, s := range f.series {
		if !s.IsRemoved && s.BranchID == branchID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSeriesRepo) SoftDelete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.series[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.IsRemoved = true
	return nil
}

func (f *fakeSeriesRepo) AllocateNext(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return 0, domain.ErrConflict
	}
	s, ok := f.series[id]
	if !ok || s.IsRemoved {
		return 0, domain.ErrNotFound
	}
	n := s.CurrentCorrelative
	s.CurrentCorrelative = n + 1
	s.UpdatedAt = time.Now()
	return n, nil
}

var _ repository.DocumentSeriesRepository = (*fakeSeriesRepo)(nil)

// fakeTxRunner pasa el mismo repositorio; el fake ya es atómico por mutex.
type fakeTxRunner struct{ repo *fakeSeriesRepo }

func (f *fakeTxRunner) RunSeries(ctx context.Context, fn func(repository.DocumentSeriesRepository) error) error {
	return fn(f.repo)
}

// fakeBranchRepo conoce un conjunto fijo de sucursales activas.
type fakeBranchRepo struct{ branches map[string]*entity.Branch }

func newFakeBranchRepo(ids ...string) *fakeBranchRepo {
	m := make(map[string]*entity.Branch, len(ids))
	for _, id := range ids {
		m[id] = &entity.Branch{ID: id, CompanyID: "company-1", Name: "Principal", SunatCode: "0000"}
	}
	return &fakeBranchRepo{branches: m}
}

func (f *fakeBranchRepo) Create(context.Context, *entity.Branch) error { return nil }
func (f *fakeBranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	return f.branches[id], nil
}
func (f *fakeBranchRepo) GetByCompanyAndCode(context.Context, string, string) (*entity.Branch, error) {
	return nil, nil
}
func (f *fakeBranchRepo) ListByCompany(context.Context, string) ([]*entity.Branch, error) {
	return nil, nil
}
func (f *fakeBranchRepo) Update(context.Context, *entity.Branch) error { return nil }
func (f *fakeBranchRepo) SoftDelete(context.Context, string) error     { return nil }

var _ repository.BranchRepository = (*fakeBranchRepo)(nil)

func newRegistry(seriesRepo *fakeSeriesRepo, branchIDs ...string) *numbering.RegistryUseCase {
	return numbering.NewRegistryUseCase(
		newFakeBranchRepo(branchIDs...), seriesRepo, &fakeTxRunner{repo: seriesRepo},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de series
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NormalizaYPersiste(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")

	out, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "01",
		SeriesCode:   "f001", // minúsculas: debe almacenarse como F001
	})
	require.NoError(t, err)
	assert.Equal(t, "F001", out.SeriesCode)
	assert.Equal(t, "Factura Electrónica", out.DocumentTypeName)
	assert.EqualValues(t, 1, out.CurrentCorrelative)

	stored, err := repo.GetActive(context.Background(), "branch-1", "01", "F001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.EqualValues(t, 1, stored.CurrentCorrelative)
}

func TestRegister_CorrelativoInicialPersonalizado(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")

	out, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType:        "03",
		SeriesCode:          "B001",
		StartingCorrelative: 500,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 500, out.CurrentCorrelative)
}

func TestRegister_PrefijoIncorrecto(t *testing.T) {
	uc := newRegistry(newFakeSeriesRepo(), "branch-1")

	_, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "01", // factura exige F
		SeriesCode:   "B001",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRegister_NotaCreditoAceptaAmbosPrefijos(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")

	_, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "07", SeriesCode: "F001",
	})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "07", SeriesCode: "B001",
	})
	require.NoError(t, err)
}

func TestRegister_LongitudIncorrecta(t *testing.T) {
	uc := newRegistry(newFakeSeriesRepo(), "branch-1")

	_, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "01",
		SeriesCode:   "F01",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestRegister_DuplicadoActivoRechazado(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")
	in := dto.RegisterSeriesRequest{DocumentType: "01", SeriesCode: "F001"}

	_, err := uc.Register(context.Background(), "branch-1", in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "branch-1", in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "el duplicado activo debe reportarse como error de validación")
}

func TestRegister_MismaSerieTrasEliminar(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")
	in := dto.RegisterSeriesRequest{DocumentType: "01", SeriesCode: "F001"}

	first, err := uc.Register(context.Background(), "branch-1", in)
	require.NoError(t, err)
	require.NoError(t, uc.Remove(context.Background(), first.ID))

	// La serie eliminada no bloquea un nuevo registro con el mismo código.
	_, err = uc.Register(context.Background(), "branch-1", in)
	require.NoError(t, err)
}

func TestRegister_SucursalInexistente(t *testing.T) {
	uc := newRegistry(newFakeSeriesRepo()) // sin sucursales

	_, err := uc.Register(context.Background(), "no-existe", dto.RegisterSeriesRequest{
		DocumentType: "01", SeriesCode: "F001",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove_SerieYaEliminada(t *testing.T) {
	repo := newFakeSeriesRepo()
	uc := newRegistry(repo, "branch-1")

	out, err := uc.Register(context.Background(), "branch-1", dto.RegisterSeriesRequest{
		DocumentType: "01", SeriesCode: "F001",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Remove(context.Background(), out.ID))
	assert.ErrorIs(t, uc.Remove(context.Background(), out.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de correlativos
// ──────────────────────────────────────────────────────────────────────────────

func seedSeries(t *testing.T, repo *fakeSeriesRepo, id string, current int64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.DocumentSeries{
		ID:                 id,
		BranchID:           "branch-1",
		DocumentType:       "01",
		SeriesCode:         "F001",
		CurrentCorrelative: current,
	}))
}

func TestAllocateNext_SecuenciaDesdeCorrelativoActual(t *testing.T) {
	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 5)
	uc := numbering.NewAllocatorUseCase(repo)

	for _, want := range []string{"00000005", "00000006", "00000007"} {
		out, err := uc.AllocateNext(context.Background(), "series-1")
		require.NoError(t, err)
		assert.Equal(t, want, out.Correlative)
		assert.Equal(t, "F001-"+want, out.FullNumber)
	}

	s, err := repo.GetByID(context.Background(), "series-1")
	require.NoError(t, err)
	assert.EqualValues(t, 8, s.CurrentCorrelative, "el contador final debe ser 8")
}

func TestAllocateNext_SerieInexistente(t *testing.T) {
	uc := numbering.NewAllocatorUseCase(newFakeSeriesRepo())

	_, err := uc.AllocateNext(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAllocateNext_SerieEliminada(t *testing.T) {
	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 1)
	require.NoError(t, repo.SoftDelete(context.Background(), "series-1"))
	uc := numbering.NewAllocatorUseCase(repo)

	_, err := uc.AllocateNext(context.Background(), "series-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAllocateNext_ReintentaConflictosTransitorios(t *testing.T) {
	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 1)
	repo.conflictsLeft = 2 // dos fallos transitorios, el tercer intento entra
	uc := numbering.NewAllocatorUseCase(repo)

	out, err := uc.AllocateNext(context.Background(), "series-1")
	require.NoError(t, err)
	assert.Equal(t, "00000001", out.Correlative)
}

func TestAllocateNext_ConflictosAgotadosDevuelveServicioNoDisponible(t *testing.T) {
	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 1)
	repo.conflictsLeft = 100 // más que el presupuesto de reintentos
	uc := numbering.NewAllocatorUseCase(repo)

	_, err := uc.AllocateNext(context.Background(), "series-1")
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

// Llamadas concurrentes sobre la misma serie nunca devuelven el mismo valor y
// el contador final es el inicial más la cantidad de asignaciones exitosas.
func TestAllocateNext_ConcurrenciaSinDuplicados(t *testing.T) {
	const workers = 50

	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 1)
	uc := numbering.NewAllocatorUseCase(repo)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]int, workers)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.AllocateNext(context.Background(), "series-1")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			results[out.Correlative]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, results, workers, "cada asignación debe emitir un correlativo distinto")
	for correlative, count := range results {
		assert.Equal(t, 1, count, "correlativo %s emitido más de una vez", correlative)
	}

	s, err := repo.GetByID(context.Background(), "series-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1+workers, s.CurrentCorrelative)
}

// Series de sucursales distintas avanzan de forma independiente.
func TestAllocateNext_SeriesIndependientes(t *testing.T) {
	repo := newFakeSeriesRepo()
	seedSeries(t, repo, "series-1", 1)
	require.NoError(t, repo.Create(context.Background(), &entity.DocumentSeries{
		ID: "series-2", BranchID: "branch-2", DocumentType: "03", SeriesCode: "B001", CurrentCorrelative: 10,
	}))
	uc := numbering.NewAllocatorUseCase(repo)

	out1, err := uc.AllocateNext(context.Background(), "series-1")
	require.NoError(t, err)
	out2, err := uc.AllocateNext(context.Background(), "series-2")
	require.NoError(t, err)

	assert.Equal(t, "00000001", out1.Correlative)
	assert.Equal(t, "00000010", out2.Correlative)
}
