package tracing

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() {
		log.Logger = original
	})

	t.Run("given id", func(t *testing.T) {
		buf.Reset()
		ctx := WithTraceID(context.Background(), "request-1")
		log.Ctx(ctx).Info().Msg("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "request-1", entry[traceIDKey])
	})
	t.Run("generated id", func(t *testing.T) {
		buf.Reset()
		ctx := InjectTraceID(context.Background())
		log.Ctx(ctx).Info().Msg("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotEmpty(t, entry[traceIDKey])
	})
}
