package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

type fakeCredentialsRepo struct {
	creds map[string]*entity.CompanyCredentials
	api   map[string]*entity.CompanyAPICredentials
	certs map[string]*entity.CompanyCertificate
}

func newFakeCredentialsRepo() *fakeCredentialsRepo {
	return &fakeCredentialsRepo{
		creds: make(map[string]*entity.CompanyCredentials),
		api:   make(map[string]*entity.CompanyAPICredentials),
		certs: make(map[string]*entity.CompanyCertificate),
	}
}

func (r *fakeCredentialsRepo) UpsertCredentials(_ context.Context, c *entity.CompanyCredentials) error {
	cp := *c
	r.creds[c.CompanyID] = &cp
	return nil
}

func (r *fakeCredentialsRepo) GetCredentials(_ context.Context, companyID string) (*entity.CompanyCredentials, error) {
	c, ok := r.creds[companyID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCredentialsRepo) UpsertAPICredentials(_ context.Context, c *entity.CompanyAPICredentials) error {
	cp := *c
	r.api[c.CompanyID] = &cp
	return nil
}

func (r *fakeCredentialsRepo) GetAPICredentials(_ context.Context, companyID string) (*entity.CompanyAPICredentials, error) {
	c, ok := r.api[companyID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCredentialsRepo) UpsertCertificate(_ context.Context, c *entity.CompanyCertificate) error {
	cp := *c
	r.certs[c.CompanyID] = &cp
	return nil
}

func (r *fakeCredentialsRepo) GetCertificate(_ context.Context, companyID string) (*entity.CompanyCertificate, error) {
	c, ok := r.certs[companyID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

var _ repository.CredentialsRepository = (*fakeCredentialsRepo)(nil)

// fakeConverter responde con valores fijos, sin PKCS#12 real.
type fakeConverter struct {
	pem      string
	subject  string
	notAfter time.Time
	fail     bool
}

func (c *fakeConverter) ConvertToPEM(_ []byte, _ string) (string, error) {
	if c.fail {
		return "", errors.New("p12 corrupto")
	}
	return c.pem, nil
}

func (c *fakeConverter) Inspect(_ string) (string, time.Time, error) {
	if c.fail {
		return "", time.Time{}, errors.New("PEM sin certificado")
	}
	return c.subject, c.notAfter, nil
}

func newCredentialsFixture(conv *fakeConverter) (*CredentialsUseCase, *fakeCredentialsRepo) {
	companies := newFakeCompanyRepo()
	companies.companies[testUserCompany] = &entity.Company{ID: testUserCompany, Domain: "demo", BusinessName: "Empresa Demo S.A.C."}
	repo := newFakeCredentialsRepo()
	return NewCredentialsUseCase(repo, companies, conv), repo
}

func TestUploadCertificate_ExponeTitularYVigencia(t *testing.T) {
	expiry := time.Date(2027, 6, 30, 23, 59, 59, 0, time.UTC)
	conv := &fakeConverter{
		pem:      "-----BEGIN CERTIFICATE-----\n...\n-----END CERTIFICATE-----\n",
		subject:  "CN=EMPRESA DEMO S.A.C.",
		notAfter: expiry,
	}
	uc, repo := newCredentialsFixture(conv)

	out, err := uc.UploadCertificate(context.Background(), testUserCompany, "/certs/demo.pfx", "clave", []byte{0x30})
	require.NoError(t, err)
	assert.True(t, out.HasPEM)
	assert.Equal(t, "CN=EMPRESA DEMO S.A.C.", out.Subject)
	require.NotNil(t, out.NotAfter)
	assert.True(t, out.NotAfter.Equal(expiry))

	stored := repo.certs[testUserCompany]
	require.NotNil(t, stored)
	assert.Equal(t, conv.pem, stored.CertificatePEM)
}

func TestGetCertificate_ExponeTitularYVigencia(t *testing.T) {
	expiry := time.Date(2027, 6, 30, 23, 59, 59, 0, time.UTC)
	conv := &fakeConverter{
		pem:      "-----BEGIN CERTIFICATE-----\n...\n-----END CERTIFICATE-----\n",
		subject:  "CN=EMPRESA DEMO S.A.C.",
		notAfter: expiry,
	}
	uc, _ := newCredentialsFixture(conv)

	_, err := uc.UploadCertificate(context.Background(), testUserCompany, "/certs/demo.pfx", "clave", []byte{0x30})
	require.NoError(t, err)

	out, err := uc.GetCertificate(context.Background(), testUserCompany)
	require.NoError(t, err)
	assert.Equal(t, "CN=EMPRESA DEMO S.A.C.", out.Subject)
	require.NotNil(t, out.NotAfter)
	assert.True(t, out.NotAfter.Equal(expiry))
}

func TestUploadCertificate_P12InvalidoRechazado(t *testing.T) {
	uc, _ := newCredentialsFixture(&fakeConverter{fail: true})

	_, err := uc.UploadCertificate(context.Background(), testUserCompany, "/certs/demo.pfx", "clave", []byte{0x00})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestGetCertificate_SinCertificadoRetornaNotFound(t *testing.T) {
	uc, _ := newCredentialsFixture(&fakeConverter{})

	_, err := uc.GetCertificate(context.Background(), testUserCompany)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
