package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
)

// maxCertificateSize límite del .pfx/.p12 subido (los certificados reales
// pesan unos pocos KB).
const maxCertificateSize = 1 << 20

// CredentialsHandler maneja credenciales SOL, API y certificado digital de la empresa.
type CredentialsHandler struct {
	uc *usecase.CredentialsUseCase
}

func NewCredentialsHandler(uc *usecase.CredentialsUseCase) *CredentialsHandler {
	return &CredentialsHandler{uc: uc}
}

// SetCredentials godoc
// @Summary      Guardar credenciales SOL
// @Tags         credentials
// @Accept       json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.SetCredentialsRequest  true  "Usuario secundario SOL"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/credentials [put]
func (h *CredentialsHandler) SetCredentials(c *fiber.Ctx) error {
	id := requireOwnCompany(c, "id")
	if id == "" {
		return nil
	}
	var in dto.SetCredentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SolUser == "" || in.SolPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sol_user y sol_password son requeridos"})
	}
	if err := h.uc.SetCredentials(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetAPICredentials godoc
// @Summary      Guardar credenciales API (guías de remisión)
// @Tags         credentials
// @Accept       json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.SetAPICredentialsRequest  true  "Client ID y secret"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/api-credentials [put]
func (h *CredentialsHandler) SetAPICredentials(c *fiber.Ctx) error {
	id := requireOwnCompany(c, "id")
	if id == "" {
		return nil
	}
	var in dto.SetAPICredentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientID == "" || in.ClientSecret == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y client_secret son requeridos"})
	}
	if err := h.uc.SetAPICredentials(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadCertificate godoc
// @Summary      Subir certificado digital (.pfx/.p12)
// @Description  Convierte el PKCS#12 a PEM y lo guarda listo para la firma de comprobantes.
// @Tags         credentials
// @Accept       mpfd
// @Produce      json
// @Param        id        path      string  true  "ID de la empresa"
// @Param        file      formData  file    true  "Archivo .pfx/.p12"
// @Param        password  formData  string  false "Contraseña del certificado"
// @Success      200  {object}  dto.CertificateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/certificate [post]
func (h *CredentialsHandler) UploadCertificate(c *fiber.Ctx) error {
	id := requireOwnCompany(c, "id")
	if id == "" {
		return nil
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "archivo 'file' es requerido", Field: "file"})
	}
	if fileHeader.Size > maxCertificateSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el certificado excede el tamaño máximo", Field: "file"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxCertificateSize))
	if err != nil {
		return respondError(c, err)
	}
	password := c.FormValue("password")
	out, err := h.uc.UploadCertificate(c.Context(), id, fileHeader.Filename, password, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCertificate godoc
// @Summary      Estado del certificado digital
// @Tags         credentials
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CertificateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/certificate [get]
func (h *CredentialsHandler) GetCertificate(c *fiber.Ctx) error {
	id := requireOwnCompany(c, "id")
	if id == "" {
		return nil
	}
	out, err := h.uc.GetCertificate(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
