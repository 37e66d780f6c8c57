package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
	"github.com/tu-usuario/contratos-api/internal/domain"
)

// ContratoHandler maneja las peticiones HTTP para contratos (protegido).
type ContratoHandler struct {
	uc *usecase.ContratoUseCase
}

// NewContratoHandler construye el handler.
func NewContratoHandler(uc *usecase.ContratoUseCase) *ContratoHandler {
	return &ContratoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContratoRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.ContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContratoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratoRequest
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
// @Summary      Obtener contrato por ID
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.ContratoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContratoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar contratos
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ContratoResponse
// @Router       /api/contratos [get]
func (h *ContratoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contrato
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del contrato"
// @Param        body  body  dto.UpdateContratoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [put]
func (h *ContratoHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateContratoRequest
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
// @Summary      Eliminar contrato
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del contrato"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  ReferentialResponse
// @Router       /api/contratos/{id} [delete]
func (h *ContratoHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SiguienteConsecutivo godoc
// @Summary      Siguiente número consecutivo libre del año
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        year  path  int  true  "Año natural"
// @Success      200   {object}  dto.ConsecutivoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contratos/siguiente-consecutivo/{year} [get]
func (h *ContratoHandler) SiguienteConsecutivo(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return respondError(c, domain.ErrInvalidYear)
	}
	num, err := h.uc.SiguienteConsecutivo(c.UserContext(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConsecutivoResponse{Year: year, SiguienteConsecutivo: num})
}

// ProximosAVencer godoc
// @Summary      Contratos que vencen en los próximos días
// @Tags         contratos
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Ventana en días"  default(30)
// @Success      200   {array}  dto.ContratoResponse
// @Router       /api/contratos/proximos-a-vencer [get]
func (h *ContratoHandler) ProximosAVencer(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", 30)
	out, err := h.uc.ProximosAVencer(c.UserContext(), dias)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Filter godoc
// @Summary      Filtrar contratos con paginación
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        page   path  int  true  "Página (desde 1)"
// @Param        limit  path  int  true  "Tamaño de página"
// @Param        body   body  dto.FilterContratosRequest  true  "Criterios (todos opcionales)"
// @Success      200    {object}  dto.ContratoListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/contratos/filter/{page}/{limit} [post]
func (h *ContratoHandler) Filter(c *fiber.Ctx) error {
	page, _ := c.ParamsInt("page")
	limit, _ := c.ParamsInt("limit")
	var in dto.FilterContratosRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	out, err := h.uc.Filter(c.UserContext(), in, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
