package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/domain"
	"github.com/RobertArzolaC/arka/internal/domain/entity"
	"github.com/RobertArzolaC/arka/internal/domain/repository"
)

// CredentialsUseCase administra las credenciales de emisión electrónica de una
// empresa: usuario SOL, credenciales API y certificado digital.
type CredentialsUseCase struct {
	repo        repository.CredentialsRepository
	companyRepo repository.CompanyRepository
	converter   CertificateConverter
}

// NewCredentialsUseCase construye el caso de uso de credenciales.
func NewCredentialsUseCase(repo repository.CredentialsRepository, companyRepo repository.CompanyRepository, converter CertificateConverter) *CredentialsUseCase {
	return &CredentialsUseCase{repo: repo, companyRepo: companyRepo, converter: converter}
}

// SetCredentials registra o reemplaza las credenciales SOL de la empresa.
func (uc *CredentialsUseCase) SetCredentials(ctx context.Context, companyID string, in dto.SetCredentialsRequest) error {
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return err
	}
	now := time.Now()
	return uc.repo.UpsertCredentials(ctx, &entity.CompanyCredentials{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SolUser:     in.SolUser,
		SolPassword: in.SolPassword,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// SetAPICredentials registra o reemplaza las credenciales API (guías de remisión).
func (uc *CredentialsUseCase) SetAPICredentials(ctx context.Context, companyID string, in dto.SetAPICredentialsRequest) error {
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return err
	}
	now := time.Now()
	return uc.repo.UpsertAPICredentials(ctx, &entity.CompanyAPICredentials{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		ClientID:     in.ClientID,
		ClientSecret: in.ClientSecret,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// UploadCertificate guarda el certificado .pfx/.p12 de la empresa y genera su
// conversión PEM para el firmado de documentos SUNAT.
func (uc *CredentialsUseCase) UploadCertificate(ctx context.Context, companyID, storedPath, password string, pfxData []byte) (*dto.CertificateResponse, error) {
	if err := uc.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	pem, err := uc.converter.ConvertToPEM(pfxData, password)
	if err != nil {
		return nil, domain.NewValidationError("certificate_file", "certificado inválido: %s", err.Error())
	}
	now := time.Now()
	cert := &entity.CompanyCertificate{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		CertificatePath:     storedPath,
		CertificatePassword: password,
		CertificatePEM:      pem,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.UpsertCertificate(ctx, cert); err != nil {
		return nil, err
	}
	return uc.certResponse(cert), nil
}

// GetCertificate devuelve el estado del certificado de la empresa (sin secretos).
func (uc *CredentialsUseCase) GetCertificate(ctx context.Context, companyID string) (*dto.CertificateResponse, error) {
	cert, err := uc.repo.GetCertificate(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, domain.ErrNotFound
	}
	return uc.certResponse(cert), nil
}

// certResponse arma la respuesta del certificado sin exponer secretos y, si el
// PEM contiene un certificado legible, agrega titular y vigencia.
func (uc *CredentialsUseCase) certResponse(cert *entity.CompanyCertificate) *dto.CertificateResponse {
	resp := &dto.CertificateResponse{
		CompanyID: cert.CompanyID,
		HasPEM:    cert.CertificatePEM != "",
		UpdatedAt: cert.UpdatedAt,
	}
	if resp.HasPEM {
		if subject, notAfter, err := uc.converter.Inspect(cert.CertificatePEM); err == nil {
			resp.Subject = subject
			resp.NotAfter = &notAfter
		}
	}
	return resp
}

func (uc *CredentialsUseCase) requireCompany(ctx context.Context, companyID string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return nil
}
