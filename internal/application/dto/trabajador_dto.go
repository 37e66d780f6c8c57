package dto

import "time"

// CreateTrabajadorRequest datos para crear un trabajador autorizado.
type CreateTrabajadorRequest struct {
	Nombre          string `json:"nombre"`
	Cargo           string `json:"cargo"`
	CarnetIdentidad string `json:"carnet_identidad"`
	NumTelefono     string `json:"num_telefono"`
}

// UpdateTrabajadorRequest datos para actualizar un trabajador.
type UpdateTrabajadorRequest = CreateTrabajadorRequest

// SyncContratosRequest lista objetivo de contratos asignados a un trabajador.
// La sincronización elimina las asignaciones fuera de la lista y crea las que falten.
type SyncContratosRequest struct {
	Contratos []int `json:"contratos"`
}

// TrabajadorResponse representación de un trabajador en respuestas.
type TrabajadorResponse struct {
	ID              int       `json:"id_trabajador_autorizado"`
	Nombre          string    `json:"nombre"`
	Cargo           string    `json:"cargo"`
	CarnetIdentidad string    `json:"carnet_identidad"`
	NumTelefono     string    `json:"num_telefono"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AsignacionResponse asignación contrato↔trabajador.
type AsignacionResponse struct {
	ID                     int `json:"id_contrato_trabajador"`
	IDContrato             int `json:"id_contrato"`
	IDTrabajadorAutorizado int `json:"id_trabajador_autorizado"`
}
