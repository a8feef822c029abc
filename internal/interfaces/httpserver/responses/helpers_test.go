package responses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/meet"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantType    string
	}{
		{"not found", room.ErrRoomNotFound, http.StatusNotFound, "fallback", "not_found_error"},
		{"name required", room.ErrRoomNameRequired, http.StatusBadRequest, "fallback", "validation_error"},
		{"duplicate", fmt.Errorf("create: %w", room.ErrRoomAlreadyExists), http.StatusBadRequest, "fallback", "validation_error"},
		{"upstream", &meet.APIError{StatusCode: http.StatusConflict, Message: "Room is busy"}, http.StatusConflict, "Room is busy", "external_error"},
		{"network", &meet.NetworkError{Op: "POST rooms", Err: errors.New("refused")}, http.StatusInternalServerError, "fallback", "internal_error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "fallback", "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/rooms", nil)

			HandleError(c, tt.err, "fallback")

			require.Equal(t, tt.wantStatus, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantType, body.Type)
			assert.NotEmpty(t, body.Code)
		})
	}
}
