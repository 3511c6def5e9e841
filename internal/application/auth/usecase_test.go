package auth

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
	"github.com/RobertArzolaC/arka/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.CompanyID == companyID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok || c.IsRemoved {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) GetByDomain(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) GetByRUC(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, _ *entity.Company) error { return nil }

func (r *fakeCompanyRepo) SoftDelete(_ context.Context, _ string) error { return nil }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const testCompanyID = "11111111-1111-1111-1111-111111111111"

func newAuthFixture() (*AuthUseCase, *fakeUserRepo) {
	users := newFakeUserRepo()
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		testCompanyID: {ID: testCompanyID, Domain: "demo", RUC: "20131312955", BusinessName: "Empresa Demo S.A.C."},
	}}
	uc := NewAuthUseCase(users, companies, JWTConfig{
		Secret:     "secreto-de-pruebas",
		ExpMinutes: 60,
		Issuer:     "arka-test",
	})
	return uc, users
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_PrimerUsuarioDeLaEmpresaEsAdmin(t *testing.T) {
	uc, _ := newAuthFixture()

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
		FirstName: "Rosa",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, entity.StatusActive, out.Status)
}

func TestRegister_UsuariosPosterioresEntranComoConsulta(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	// Un registro anónimo contra una empresa que ya tiene usuarios nunca
	// obtiene privilegios: entra como consulta y un admin lo promueve después.
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "intruso@demo.pe",
		Password:  "clave-segura-2",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleConsulta, out.Role)
	assert.NotEqual(t, entity.RoleAdmin, out.Role)
}

func TestRegister_EmailDuplicadoEnLaEmpresaRechazado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "otra-clave-123",
		CompanyID: testCompanyID,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_EmpresaInexistenteRechazada(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "alguien@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: "99999999-9999-9999-9999-999999999999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenLlevaRolAsignadoPorElServidor(t *testing.T) {
	uc, _ := newAuthFixture()

	reg, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dueno@demo.pe",
		Password: "clave-segura-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.Parse("secreto-de-pruebas", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrectoRechazado(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dueno@demo.pe",
		Password: "clave-equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivoRechazado(t *testing.T) {
	uc, users := newAuthFixture()

	reg, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "dueno@demo.pe",
		Password:  "clave-segura-1",
		CompanyID: testCompanyID,
	})
	require.NoError(t, err)

	u := users.users[reg.ID]
	u.Status = entity.StatusInactive

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "dueno@demo.pe",
		Password: "clave-segura-1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
