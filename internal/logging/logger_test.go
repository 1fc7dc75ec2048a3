package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, closeFn, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closeFn())
}

func TestNewWritesToFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.File = filepath.Join(t.TempDir(), "logs", "reader.log")

	logger, closeFn, err := New(cfg)
	require.NoError(t, err)
	l := Component(logger, "test")
	l.Info().Msg("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = zerolog.WarnLevel
	logger := NewWithWriter(cfg, &buf)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	ctx := WithContext(context.Background(), NewWithWriter(cfg, &buf))

	FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}
