package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
)

// UsuarioHandler maneja la administración de usuarios (solo admin).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Filter godoc
// @Summary      Filtrar usuarios con paginación
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        page   path  int  true  "Página (desde 1)"
// @Param        limit  path  int  true  "Tamaño de página"
// @Param        body   body  dto.FilterUsuariosRequest  true  "Criterios (todos opcionales)"
// @Success      200    {object}  dto.UsuarioListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/usuarios/filter/{page}/{limit} [post]
func (h *UsuarioHandler) Filter(c *fiber.Ctx) error {
	page, _ := c.ParamsInt("page")
	limit, _ := c.ParamsInt("limit")
	var in dto.FilterUsuariosRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Filter(c.UserContext(), in, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
