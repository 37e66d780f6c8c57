// Package normalize ofrece normalización de texto para búsquedas:
// elimina tildes y pasa a minúsculas, de modo que "Construcción" y
// "construccion" se comparen iguales.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // marcas diacríticas (tildes, diéresis)
	norm.NFC,
)

// String devuelve s sin tildes y en minúsculas.
func String(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		// Entrada no normalizable: se usa tal cual en minúsculas
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
