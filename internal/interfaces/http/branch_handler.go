package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
)

// BranchHandler maneja las peticiones HTTP para sucursales.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// getOwnBranch resuelve la sucursal y verifica que pertenezca a la empresa
// del token. Escribe la respuesta de error y devuelve nil si no corresponde.
func (h *BranchHandler) getOwnBranch(c *fiber.Ctx, id string) (*dto.BranchResponse, error) {
	branch, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return nil, respondError(c, err)
	}
	if branch == nil || branch.CompanyID != GetCompanyID(c) {
		return nil, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return branch, nil
}

// Create godoc
// @Summary      Crear sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Param        body       body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201  {object}  dto.BranchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{companyID}/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	companyID := requireOwnCompany(c, "companyID")
	if companyID == "" {
		return nil
	}
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.SunatCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y sunat_code son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar sucursales de la empresa
// @Tags         branches
// @Produce      json
// @Param        companyID  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.BranchResponse
// @Router       /api/companies/{companyID}/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	companyID := requireOwnCompany(c, "companyID")
	if companyID == "" {
		return nil
	}
	out, err := h.uc.ListByCompany(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener sucursal por ID
// @Tags         branches
// @Produce      json
// @Param        id  path  string  true  "ID de la sucursal"
// @Success      200  {object}  dto.BranchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [get]
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	branch, err := h.getOwnBranch(c, c.Params("id"))
	if branch == nil {
		return err
	}
	return c.JSON(branch)
}

// Update godoc
// @Summary      Actualizar sucursal
// @Description  El código SUNAT no es modificable.
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sucursal"
// @Param        body  body  dto.UpdateBranchRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.BranchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [put]
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	branch, err := h.getOwnBranch(c, c.Params("id"))
	if branch == nil {
		return err
	}
	var in dto.UpdateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), branch.ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sucursal (soft delete)
// @Description  La sucursal Principal (código 0000) no puede eliminarse.
// @Tags         branches
// @Param        id  path  string  true  "ID de la sucursal"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{id} [delete]
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	branch, err := h.getOwnBranch(c, c.Params("id"))
	if branch == nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), branch.ID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
