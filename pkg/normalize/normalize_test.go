package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/contratos-api/pkg/normalize"
)

func TestString(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		{"Construcción", "construccion"},
		{"ADMINISTRACIÓN PÚBLICA", "administracion publica"},
		{"Güines", "guines"},
		{"ya normalizado", "ya normalizado"},
		{"", ""},
		{"Año 2025", "ano 2025"}, // la ñ pierde la virgulilla
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalize.String(c.entrada), "entrada %q", c.entrada)
	}
}
