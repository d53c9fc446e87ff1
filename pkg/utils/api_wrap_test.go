package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("trace_id", "trace-123")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid input", err: ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "invalid page", err: ErrInvalidPage, expected: http.StatusBadRequest},
		{name: "trip not found", err: ErrTripNotFound, expected: http.StatusNotFound},
		{name: "generation failed", err: ErrGeneration, expected: http.StatusBadGateway},
		{name: "invalid ai response", err: ErrInvalidAIResponse, expected: http.StatusBadGateway},
		{name: "adaptation failed", err: ErrAdaptation, expected: http.StatusBadGateway},
		{name: "database error", err: ErrDatabaseError, expected: http.StatusInternalServerError},
		{name: "unknown error", err: fmt.Errorf("boom"), expected: http.StatusInternalServerError},
		{name: "wrapped sentinel", err: fmt.Errorf("%w: primary: 429", ErrGeneration), expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveError(t, tt.err)
			assert.Equal(t, tt.expected, code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.expected, body.Code)
			assert.Equal(t, "trace-123", body.TraceID)
		})
	}
}

func TestGenerationAndParseFailuresAreDistinguishable(t *testing.T) {
	_, genBody := serveError(t, ErrGeneration)
	_, parseBody := serveError(t, ErrInvalidAIResponse)

	assert.NotEqual(t, genBody.Message, parseBody.Message,
		"an upstream outage and a bad answer must read differently to the caller")
}
