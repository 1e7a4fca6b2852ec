package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paginate/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logging.ParseLevel("loud"))
}

func TestNewWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriterLogger(&buf, logging.Config{Level: "info", Format: logging.FormatJSON})
	l = logging.ComponentLogger(l, "test")

	l.Debug().Msg("hidden")
	l.Info().Str("operation", "check").Msg("shown")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "shown", event["message"])
	assert.Equal(t, "test", event["component"])
	assert.Equal(t, "check", event["operation"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "paginate.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "debug",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   path,
	})
	t.Cleanup(func() { _ = result.Close() })

	assert.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)
	assert.FileExists(t, path)
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "second close is a no-op")
}

func TestNewLoggerWithPath_FileFallback(t *testing.T) {
	result := logging.NewLoggerWithPath(logging.Config{Output: logging.OutputFile})

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	logging.PrintLogPathMessage(&buf, "/tmp/x.log")
	logging.PrintFallbackWarning(&buf, "denied")

	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "denied")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.TraceIDFromContext(ctx))

	id := logging.GetOrGenerateTraceID(ctx)
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)

	ctx = logging.ContextWithTraceID(ctx, id)
	assert.Equal(t, id, logging.TraceIDFromContext(ctx))
	assert.Equal(t, id, logging.GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriterLogger(&buf, logging.Config{Format: logging.FormatJSON})

	ctx := l.WithContext(context.Background())
	ctx = logging.ContextWithTraceID(ctx, "trace-1")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"trace-1"`)

	require.NotNil(t, logging.FromContext(context.Background()))
}

func TestLogPathContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logging.LogPathFromContext(ctx))

	ctx = logging.ContextWithLogPath(ctx, "/var/log/paginate.log")
	assert.Equal(t, "/var/log/paginate.log", logging.LogPathFromContext(ctx))
}
