package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha_FormatosAdmitidos(t *testing.T) {
	corta, err := parseFecha("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), corta)

	rfc, err := parseFecha("2025-03-15T10:30:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, rfc.Location(), "siempre se convierte a UTC")
	assert.Equal(t, 15, rfc.Hour(), "10:30 -05:00 son las 15:30 UTC")

	for _, s := range []string{"", "15/03/2025", "2025-13-01", "ayer"} {
		_, err := parseFecha(s)
		assert.Error(t, err, "entrada %q", s)
	}
}

func TestRangoAnio(t *testing.T) {
	desde, hasta := rangoAnio(2025)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), desde)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), hasta)
}
