package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUsuarioNotFound  = errors.New("usuario no encontrado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrInvalidParameter = errors.New("parámetro inválido")
	ErrInvalidYear      = errors.New("año fuera de rango")
)

// ValidationErrors acumula todos los mensajes de violación de reglas de negocio
// de una operación, para que el cliente reciba la lista completa en una sola
// respuesta en vez de un error a la vez.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// AsValidation extrae ValidationErrors de un error, si lo es.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// Bloqueo identifica un registro hijo que impide eliminar a su padre.
type Bloqueo struct {
	ID       int    `json:"id"`
	Etiqueta string `json:"etiqueta"`
}

// ReferentialError indica que una eliminación fue bloqueada por registros
// dependientes. Bloqueos enumera cada dependiente para que el cliente pueda
// mostrar exactamente qué impide el borrado.
type ReferentialError struct {
	Recurso  string    // recurso que se intentó eliminar (ej. "contrato")
	Relacion string    // tipo de los dependientes (ej. "ofertas")
	Bloqueos []Bloqueo
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("no se puede eliminar %s: tiene %d %s asociados", e.Recurso, len(e.Bloqueos), e.Relacion)
}

// AsReferential extrae un ReferentialError de un error, si lo es.
func AsReferential(err error) (*ReferentialError, bool) {
	var r *ReferentialError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
