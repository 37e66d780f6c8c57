package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/contratos-api/pkg/logger"
)

func TestNew_AdjuntaServicioYNivel(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "debug", Servicio: "contratos-api"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")
	assert.Contains(t, buf.String(), `"servicio":"contratos-api"`)
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
