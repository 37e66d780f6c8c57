package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/auth"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
