package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobertArzolaC/arka/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que verifica si el rol del token
// está entre los permitidos. Debe usarse DESPUÉS de AuthMiddleware (necesita
// LocalRole).
//
// Comportamiento:
//   - 403 Forbidden → el rol del usuario no alcanza para la operación.
//   - Si no hay role en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role no encontrado en el token",
			})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no tiene permiso para esta operación",
		})
	}
}
