package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobertArzolaC/arka/internal/application/dto"
	"github.com/RobertArzolaC/arka/internal/application/numbering"
	"github.com/RobertArzolaC/arka/internal/application/usecase"
)

// SeriesHandler maneja el registro de series de numeración y la asignación de
// correlativos.
type SeriesHandler struct {
	registry  *numbering.RegistryUseCase
	allocator *numbering.AllocatorUseCase
	branchUC  *usecase.BranchUseCase
}

func NewSeriesHandler(registry *numbering.RegistryUseCase, allocator *numbering.AllocatorUseCase, branchUC *usecase.BranchUseCase) *SeriesHandler {
	return &SeriesHandler{registry: registry, allocator: allocator, branchUC: branchUC}
}

// ownBranchID verifica que la sucursal pertenezca a la empresa del token.
// Escribe la respuesta de error y devuelve "" si no corresponde.
func (h *SeriesHandler) ownBranchID(c *fiber.Ctx, branchID string) (string, error) {
	branch, err := h.branchUC.GetByID(c.Context(), branchID)
	if err != nil {
		return "", respondError(c, err)
	}
	if branch == nil || branch.CompanyID != GetCompanyID(c) {
		return "", c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return branch.ID, nil
}

// ownSeries resuelve una serie y verifica, vía su sucursal, que pertenezca a
// la empresa del token.
func (h *SeriesHandler) ownSeries(c *fiber.Ctx, seriesID string) (*dto.SeriesResponse, error) {
	series, err := h.registry.Get(c.Context(), seriesID)
	if err != nil {
		return nil, respondError(c, err)
	}
	branchID, err := h.ownBranchID(c, series.BranchID)
	if branchID == "" {
		return nil, err
	}
	return series, nil
}

// Register godoc
// @Summary      Registrar serie de numeración
// @Description  Valida el prefijo del código según el tipo de comprobante (F para facturas, B para boletas, T para guías; las notas aceptan F o B) y que no exista otra serie activa igual en la sucursal.
// @Tags         series
// @Accept       json
// @Produce      json
// @Param        branchID  path  string  true  "ID de la sucursal"
// @Param        body      body  dto.RegisterSeriesRequest  true  "Tipo, código y correlativo inicial"
// @Success      201  {object}  dto.SeriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{branchID}/series [post]
func (h *SeriesHandler) Register(c *fiber.Ctx) error {
	branchID, err := h.ownBranchID(c, c.Params("branchID"))
	if branchID == "" {
		return err
	}
	var in dto.RegisterSeriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.DocumentType == "" || in.SeriesCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document_type y series_code son requeridos"})
	}
	out, err := h.registry.Register(c.Context(), branchID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar series activas de la sucursal
// @Tags         series
// @Produce      json
// @Param        branchID  path  string  true  "ID de la sucursal"
// @Success      200  {array}  dto.SeriesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/branches/{branchID}/series [get]
func (h *SeriesHandler) List(c *fiber.Ctx) error {
	branchID, err := h.ownBranchID(c, c.Params("branchID"))
	if branchID == "" {
		return err
	}
	out, err := h.registry.ListByBranch(c.Context(), branchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar serie (soft delete)
// @Description  La serie se retiene para auditoría; su correlativo no se reutiliza.
// @Tags         series
// @Param        id  path  string  true  "ID de la serie"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/series/{id} [delete]
func (h *SeriesHandler) Remove(c *fiber.Ctx) error {
	series, err := h.ownSeries(c, c.Params("id"))
	if series == nil {
		return err
	}
	if err := h.registry.Remove(c.Context(), series.ID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Allocate godoc
// @Summary      Asignar el siguiente correlativo de la serie
// @Description  Devuelve el número emitido con 8 dígitos y la referencia completa serie-correlativo. La asignación es atómica: dos peticiones concurrentes nunca reciben el mismo número.
// @Tags         series
// @Produce      json
// @Param        id  path  string  true  "ID de la serie"
// @Success      200  {object}  dto.AllocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/series/{id}/allocate [post]
func (h *SeriesHandler) Allocate(c *fiber.Ctx) error {
	series, err := h.ownSeries(c, c.Params("id"))
	if series == nil {
		return err
	}
	out, err := h.allocator.AllocateNext(c.Context(), series.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
