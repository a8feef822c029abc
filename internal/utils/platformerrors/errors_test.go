package platformerrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_CarriesRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	err := NewError(ctx, LayerDomain, ErrorTypeNotFound, "room not found", nil)

	assert.Equal(t, "req-1", err.RequestID)
	assert.True(t, strings.HasPrefix(err.UUID, "err_"))
	assert.Equal(t, http.StatusNotFound, err.Status())
}

func TestNewUpstreamError_ForwardsStatus(t *testing.T) {
	err := NewUpstreamError(context.Background(), http.StatusUnprocessableEntity, "bad config", nil)

	assert.Equal(t, ErrorTypeExternal, err.Type)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status())
}

func TestGetPlatformError(t *testing.T) {
	inner := NewUpstreamError(context.Background(), http.StatusConflict, "taken", nil)

	assert.Same(t, inner, GetPlatformError(fmt.Errorf("create: %w", inner)))
	assert.Nil(t, GetPlatformError(errors.New("boom")))
	assert.Nil(t, GetPlatformError(nil))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeTimeout, http.StatusGatewayTimeout},
		{ErrorType("whatever"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}

func TestWriteHTTPError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("upstream status forwarded", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		WriteHTTPError(c, NewUpstreamError(context.Background(), http.StatusForbidden, "no access", nil), zerolog.Nop())

		require.Equal(t, http.StatusForbidden, w.Code)
		var body HTTPErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "no access", body.Message)
		assert.Equal(t, "external_error", body.Type)
		assert.NotEmpty(t, body.Code)
	})

	t.Run("nil error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		WriteHTTPError(c, nil, zerolog.Nop())

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body HTTPErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "internal_error", body.Type)
	})
}

func TestWriteNotFound_CarriesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), "req-9"))

	WriteNotFound(c, "Cannot GET /nowhere")

	require.Equal(t, http.StatusNotFound, w.Code)
	var body HTTPErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cannot GET /nowhere", body.Message)
	assert.Equal(t, "not_found_error", body.Type)
	assert.Equal(t, "req-9", body.RequestID)
}
