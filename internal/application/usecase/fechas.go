package usecase

import (
	"fmt"
	"time"
)

// Formatos de fecha aceptados en las peticiones.
var formatosFecha = []string{"2006-01-02", time.RFC3339}

// parseFecha interpreta una fecha en formato corto o RFC 3339, siempre en UTC.
func parseFecha(s string) (time.Time, error) {
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", s)
}

// rangoAnio devuelve el rango cerrado [1 enero 00:00, 31 diciembre 23:59:59]
// del año natural, en UTC.
func rangoAnio(year int) (time.Time, time.Time) {
	desde := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return desde, hasta
}
