package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(t *testing.T) {
	defer SetupWriter(&bytes.Buffer{}, "info", "text")

	t.Run("json format carries fields", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWriter(&buf, "debug", "json")
		log.WithField("window", 20).Debug("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, float64(20), entry["window"])
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		SetupWriter(&buf, "chatty", "text")
		assert.Equal(t, log.InfoLevel, log.GetLevel())

		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}
