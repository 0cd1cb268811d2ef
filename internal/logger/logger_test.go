package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithRequest_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Environment: "production", Level: "info", Output: &buf})

	req := httptest.NewRequest("GET", "/reviews?hotel=x", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	log.WithRequest(req).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["req_id"])
	assert.Equal(t, "/reviews", entry["path"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestRequestID_Generated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	id := RequestID(req)
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, RequestID(req))
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Environment: "production", Output: &buf}).Component("provider")
	log.WithError(errors.New("boom")).Error("failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "provider", entry["component"])

	assert.Same(t, log.Entry, log.WithError(nil))
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Environment: "production", Level: "warn", Output: &buf})
	log.Info("dropped")
	assert.Zero(t, buf.Len())
}
