package entity

import "time"

// TrabajadorAutorizado es una persona autorizada a operar bajo contratos.
type TrabajadorAutorizado struct {
	ID              int
	Nombre          string
	Cargo           string
	CarnetIdentidad string // 11 dígitos, único
	NumTelefono     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ContratoTrabajador es la asignación muchos-a-muchos contrato↔trabajador.
type ContratoTrabajador struct {
	ID                     int
	IDContrato             int
	IDTrabajadorAutorizado int
	CreatedAt              time.Time
}
