package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUsuarioID = "id_usuario"
	LocalRol       = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja id_usuario y rol en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsuarioID, claims.IDUsuario)
		c.Locals(LocalRol, claims.Rol)
		return c.Next()
	}
}

// RequireRol permite el paso solo a usuarios con alguno de los roles dados.
// Debe montarse después de AuthMiddleware.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		for _, r := range roles {
			if rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUsuarioID devuelve el id del usuario autenticado (0 si no hay).
func GetUsuarioID(c *fiber.Ctx) int {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetRol devuelve el rol del usuario autenticado ("" si no hay).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
