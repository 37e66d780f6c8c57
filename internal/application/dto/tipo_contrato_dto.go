package dto

import (
	"time"

	"github.com/tu-usuario/contratos-api/internal/domain/entity"
)

// TipoContratoRequest datos para crear o actualizar un tipo de contrato.
type TipoContratoRequest struct {
	Nombre string `json:"nombre"`
}

// TipoContratoResponse representación de un tipo de contrato en respuestas.
type TipoContratoResponse struct {
	ID        int       `json:"id_tipo_contrato"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTipoContratoResponse proyecta la entidad al DTO de respuesta.
func ToTipoContratoResponse(t *entity.TipoContrato) *TipoContratoResponse {
	if t == nil {
		return nil
	}
	return &TipoContratoResponse{ID: t.ID, Nombre: t.Nombre, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}
