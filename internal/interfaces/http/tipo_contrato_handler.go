package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
)

// TipoContratoHandler maneja las peticiones HTTP para el catálogo de tipos de contrato.
type TipoContratoHandler struct {
	uc *usecase.TipoContratoUseCase
}

// NewTipoContratoHandler construye el handler.
func NewTipoContratoHandler(uc *usecase.TipoContratoUseCase) *TipoContratoHandler {
	return &TipoContratoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de contrato
// @Tags         tipos-contrato
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TipoContratoRequest  true  "Nombre del tipo"
// @Success      201   {object}  dto.TipoContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tipos-contrato [post]
func (h *TipoContratoHandler) Create(c *fiber.Ctx) error {
	var in dto.TipoContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	t, err := h.uc.Create(c.UserContext(), in.Nombre)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTipoContratoResponse(t))
}

// GetByID godoc
// @Summary      Obtener tipo de contrato por ID
// @Tags         tipos-contrato
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo"
// @Success      200  {object}  dto.TipoContratoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos-contrato/{id} [get]
func (h *TipoContratoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	t, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTipoContratoResponse(t))
}

// List godoc
// @Summary      Listar tipos de contrato
// @Tags         tipos-contrato
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TipoContratoResponse
// @Router       /api/tipos-contrato [get]
func (h *TipoContratoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.TipoContratoResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *dto.ToTipoContratoResponse(t))
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Actualizar tipo de contrato
// @Tags         tipos-contrato
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.TipoContratoRequest  true  "Nombre nuevo"
// @Success      200   {object}  dto.TipoContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tipos-contrato/{id} [put]
func (h *TipoContratoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.TipoContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	t, err := h.uc.Update(c.UserContext(), id, in.Nombre)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToTipoContratoResponse(t))
}

// Delete godoc
// @Summary      Eliminar tipo de contrato
// @Tags         tipos-contrato
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  ReferentialResponse
// @Router       /api/tipos-contrato/{id} [delete]
func (h *TipoContratoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
