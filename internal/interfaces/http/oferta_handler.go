package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
)

// OfertaHandler maneja las peticiones HTTP para ofertas (protegido).
type OfertaHandler struct {
	uc *usecase.OfertaUseCase
}

// NewOfertaHandler construye el handler.
func NewOfertaHandler(uc *usecase.OfertaUseCase) *OfertaHandler {
	return &OfertaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear oferta con sus descripciones
// @Tags         ofertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfertaRequest  true  "Datos de la oferta"
// @Success      201   {object}  dto.OfertaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ofertas [post]
func (h *OfertaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfertaRequest
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
// @Summary      Obtener oferta por ID
// @Tags         ofertas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.OfertaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ofertas/{id} [get]
func (h *OfertaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar ofertas
// @Tags         ofertas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OfertaResponse
// @Router       /api/ofertas [get]
func (h *OfertaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar oferta
// @Description  Si el cuerpo trae "descripciones" el conjunto se reemplaza por completo; si no viene, se conserva.
// @Tags         ofertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la oferta"
// @Param        body  body  dto.UpdateOfertaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OfertaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ofertas/{id} [put]
func (h *OfertaHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateOfertaRequest
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
// @Summary      Eliminar oferta y sus descripciones
// @Tags         ofertas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ofertas/{id} [delete]
func (h *OfertaHandler) Delete(c *fiber.Ctx) error {
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
// @Summary      Filtrar ofertas con paginación
// @Tags         ofertas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        page   path  int  true  "Página (desde 1)"
// @Param        limit  path  int  true  "Tamaño de página"
// @Param        body   body  dto.FilterOfertasRequest  true  "Criterios (todos opcionales)"
// @Success      200    {object}  dto.OfertaListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/ofertas/filter/{page}/{limit} [post]
func (h *OfertaHandler) Filter(c *fiber.Ctx) error {
	page, _ := c.ParamsInt("page")
	limit, _ := c.ParamsInt("limit")
	var in dto.FilterOfertasRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Filter(c.UserContext(), in, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
