package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env      string // development -> consola legible; cualquier otro valor -> JSON
	Level    string // trace, debug, info, warn, error
	Servicio string // nombre del servicio; se adjunta a cada línea si no está vacío
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado. En development usa salida legible; en
// cualquier otro entorno emite JSON para su ingesta por agregadores.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	lc := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Servicio != "" {
		lc = lc.Str("servicio", cfg.Servicio)
	}
	zl := lc.Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// Trace, Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog devuelve el logger interno por si se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
