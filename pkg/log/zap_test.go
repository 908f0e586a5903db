package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetOutputAndLevel(t *testing.T) {
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		SetLevel(zap.InfoLevel)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(zap.InfoLevel)

	Info("loading weather", zap.String("city", "Oslo"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loading weather", entry["msg"])
	assert.Equal(t, "Oslo", entry["city"])
	assert.Contains(t, entry, "@timestamp")

	buf.Reset()
	SetLevel(zap.WarnLevel)
	Info("hidden")
	Debug("hidden")
	assert.Zero(t, buf.Len())

	Warn("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
