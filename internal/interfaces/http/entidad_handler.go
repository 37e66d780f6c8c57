package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
)

// EntidadHandler maneja las peticiones HTTP para entidades (protegido).
type EntidadHandler struct {
	uc *usecase.EntidadUseCase
}

// NewEntidadHandler construye el handler.
func NewEntidadHandler(uc *usecase.EntidadUseCase) *EntidadHandler {
	return &EntidadHandler{uc: uc}
}

// Create godoc
// @Summary      Crear entidad
// @Tags         entidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntidadRequest  true  "Datos de la entidad"
// @Success      201   {object}  dto.EntidadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/entidades [post]
func (h *EntidadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntidadRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entidad por ID
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entidad"
// @Success      200  {object}  dto.EntidadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entidades/{id} [get]
func (h *EntidadHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar entidades
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EntidadResponse
// @Router       /api/entidades [get]
func (h *EntidadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entidad
// @Tags         entidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entidad"
// @Param        body  body  dto.UpdateEntidadRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EntidadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entidades/{id} [put]
func (h *EntidadHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateEntidadRequest
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
// @Summary      Eliminar entidad
// @Tags         entidades
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la entidad"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  ReferentialResponse
// @Router       /api/entidades/{id} [delete]
func (h *EntidadHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Filter godoc
// @Summary      Filtrar entidades con paginación
// @Tags         entidades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        page   path  int  true  "Página (desde 1)"
// @Param        limit  path  int  true  "Tamaño de página"
// @Param        body   body  dto.FilterEntidadesRequest  true  "Criterios (todos opcionales)"
// @Success      200    {object}  dto.EntidadListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/entidades/filter/{page}/{limit} [post]
func (h *EntidadHandler) Filter(c *fiber.Ctx) error {
	page, _ := c.ParamsInt("page")
	limit, _ := c.ParamsInt("limit")
	var in dto.FilterEntidadesRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Filter(c.UserContext(), in, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
