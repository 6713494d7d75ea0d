package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepGlobal restaura el logger global de zerolog al terminar el test.
func keepGlobal(t *testing.T) {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":       zerolog.InfoLevel,
		"ruido":  zerolog.InfoLevel,
		"debug":  zerolog.DebugLevel,
		"DEBUG":  zerolog.DebugLevel,
		" warn ": zerolog.WarnLevel,
		"error":  zerolog.ErrorLevel,
		"trace":  zerolog.TraceLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "nivel %q", in)
	}
}

func TestNew_InstalaLoggerGlobalJSON(t *testing.T) {
	keepGlobal(t)
	var buf bytes.Buffer

	l := New(Config{Env: "production", Level: "info", Out: &buf})
	log.Info().Str("k", "v").Msg("desde el global")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "en producción la salida es JSON")
	assert.Equal(t, "desde el global", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "time")

	buf.Reset()
	l.Debug().Msg("oculto")
	log.Debug().Msg("oculto")
	assert.Empty(t, buf.String(), "debug queda por debajo de info")
}

func TestNew_DevelopmentEsConsola(t *testing.T) {
	keepGlobal(t)
	var buf bytes.Buffer

	l := New(Config{Env: "development", Level: "debug", Out: &buf})
	l.Debug().Msg("legible")

	out := buf.String()
	assert.Contains(t, out, "legible")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "la consola no emite JSON")
}

func TestNop_NoEscribe(t *testing.T) {
	l := Nop()
	l.Error().Msg("nada")
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
}
