package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/domain"
)

// ReferentialResponse cuerpo de respuesta 409 por integridad referencial:
// enumera los registros dependientes que bloquean la eliminación.
type ReferentialResponse struct {
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Relacion string           `json:"relacion"`
	Bloqueos []domain.Bloqueo `json:"bloqueos"`
}

// respondError traduce errores de dominio a respuestas HTTP uniformes:
// validación y parámetros inválidos → 400, no encontrado → 404, conflicto e
// integridad referencial → 409, credenciales → 401/403, resto → 500.
func respondError(c *fiber.Ctx, err error) error {
	if errs, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", Errors: errs,
		})
	}
	if ref, ok := domain.AsReferential(err); ok {
		return c.Status(fiber.StatusConflict).JSON(ReferentialResponse{
			Code:     "REFERENTIAL",
			Message:  ref.Error(),
			Relacion: ref.Relacion,
			Bloqueos: ref.Bloqueos,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidParameter), errors.Is(err, domain.ErrInvalidYear):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMETER", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUsuarioNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// respondInvalidBody respuesta 400 para cuerpos que no parsean.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee un parámetro de ruta numérico; 0 y negativos son inválidos.
func paramID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidParameter
	}
	return id, nil
}
