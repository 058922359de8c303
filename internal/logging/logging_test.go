package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ajwerner/bst/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, &buf)

	// WHEN
	logger.Info().Msg("Hello recorddb")
	logger.Debug().Msg("filtered out")

	// THEN
	data := buf.String()
	assert.NotContains(t, data, "{")
	assert.Contains(t, data, "Hello recorddb")
	assert.NotContains(t, data, "filtered out")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	var buf bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, &buf)

	// WHEN
	logger.Info().Msg("Hello recorddb")

	// THEN
	data := buf.String()
	assert.Contains(t, data, `"_level_name":"INFO"`)
	assert.Contains(t, data, `"version":"1.1"`)
	assert.Contains(t, data, `"host"`)
	assert.Contains(t, data, `"timestamp"`)
	assert.Contains(t, data, `"level":6`)
	assert.Contains(t, data, `"short_message":"Hello recorddb"`)
}

func TestToSyslogLevel(t *testing.T) {
	for level, exp := range map[zerolog.Level]int{
		zerolog.TraceLevel: 7,
		zerolog.DebugLevel: 7,
		zerolog.InfoLevel:  6,
		zerolog.WarnLevel:  4,
		zerolog.ErrorLevel: 3,
		zerolog.FatalLevel: 2,
		zerolog.PanicLevel: 1,
		zerolog.NoLevel:    0,
	} {
		assert.Equal(t, exp, toSyslogLevel(level), level.String())
	}
}
