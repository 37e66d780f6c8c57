package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/contratos-api/internal/application/dto"
	"github.com/tu-usuario/contratos-api/internal/application/usecase"
)

// TrabajadorHandler maneja las peticiones HTTP para trabajadores autorizados y
// sus asignaciones a contratos (protegido).
type TrabajadorHandler struct {
	uc *usecase.TrabajadorUseCase
}

// NewTrabajadorHandler construye el handler.
func NewTrabajadorHandler(uc *usecase.TrabajadorUseCase) *TrabajadorHandler {
	return &TrabajadorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear trabajador autorizado
// @Tags         trabajadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrabajadorRequest  true  "Datos del trabajador"
// @Success      201   {object}  dto.TrabajadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trabajadores [post]
func (h *TrabajadorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrabajadorRequest
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
// @Summary      Obtener trabajador por ID
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del trabajador"
// @Success      200  {object}  dto.TrabajadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{id} [get]
func (h *TrabajadorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar trabajadores autorizados
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TrabajadorResponse
// @Router       /api/trabajadores [get]
func (h *TrabajadorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar trabajador
// @Tags         trabajadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del trabajador"
// @Param        body  body  dto.UpdateTrabajadorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TrabajadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{id} [put]
func (h *TrabajadorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateTrabajadorRequest
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
// @Summary      Eliminar trabajador
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del trabajador"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  ReferentialResponse
// @Router       /api/trabajadores/{id} [delete]
func (h *TrabajadorHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Asignar godoc
// @Summary      Asignar trabajador a un contrato
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id_contrato    path  int  true  "ID del contrato"
// @Param        id_trabajador  path  int  true  "ID del trabajador"
// @Success      201  {object}  dto.AsignacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{id_trabajador}/contratos/{id_contrato} [post]
func (h *TrabajadorHandler) Asignar(c *fiber.Ctx) error {
	idTrabajador, err := paramID(c, "id_trabajador")
	if err != nil {
		return respondError(c, err)
	}
	idContrato, err := paramID(c, "id_contrato")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Asignar(c.UserContext(), idContrato, idTrabajador)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Desasignar godoc
// @Summary      Eliminar una asignación
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id_asignacion  path  int  true  "ID de la asignación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/asignaciones/{id_asignacion} [delete]
func (h *TrabajadorHandler) Desasignar(c *fiber.Ctx) error {
	idAsignacion, err := paramID(c, "id_asignacion")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Desasignar(c.UserContext(), idAsignacion); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ContratosAsignados godoc
// @Summary      Listar contratos asignados a un trabajador
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del trabajador"
// @Success      200  {array}  dto.AsignacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{id}/contratos [get]
func (h *TrabajadorHandler) ContratosAsignados(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ContratosAsignados(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SincronizarContratos godoc
// @Summary      Sincronizar los contratos asignados a un trabajador
// @Description  Deja las asignaciones del trabajador exactamente en la lista enviada: elimina las sobrantes y crea las que falten.
// @Tags         trabajadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del trabajador"
// @Param        body  body  dto.SyncContratosRequest  true  "Lista objetivo de contratos"
// @Success      200   {array}  dto.AsignacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trabajadores/{id}/contratos/sync [put]
func (h *TrabajadorHandler) SincronizarContratos(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SyncContratosRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	if err := h.uc.SincronizarContratos(c.UserContext(), id, in.Contratos); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ContratosAsignados(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
