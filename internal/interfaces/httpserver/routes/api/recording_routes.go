package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainroom "jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/meet-api/internal/interfaces/httpserver/responses"
	recordingres "jan-server/services/meet-api/internal/interfaces/httpserver/responses/recording"
)

// forwardedMediaHeaders are copied from the upstream media answer.
var forwardedMediaHeaders = []string{
	"Content-Range",
	"Accept-Ranges",
	"Content-Disposition",
	"Cache-Control",
	"Last-Modified",
	"ETag",
}

// RegisterRecordingRoutes registers the recording routes.
func RegisterRecordingRoutes(router gin.IRoutes, handler *handlers.RecordingHandler) {
	router.GET("/recordings", listRecordings(handler))
	router.DELETE("/recordings/:id", deleteRecording(handler))
	router.GET("/recordings/:id/url", getRecordingURL(handler))
	router.GET("/recordings/:id/media", getRecordingMedia(handler))
}

// listRecordings godoc
// @Summary      List recordings
// @Description  Lists the recordings of one registered room, or of every registered room when room is omitted.
// @Tags         Recordings
// @Produce      json
// @Param        room query string false "Room name"
// @Success      200 {object} recordingres.ListRecordingsResponse
// @Failure      404 {object} responses.ErrorResponse "Room not registered"
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /recordings [get]
func listRecordings(handler *handlers.RecordingHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordings, err := handler.ListRecordings(c.Request.Context(), c.Query("room"))
		if err != nil {
			msg := "Error fetching recordings"
			if errors.Is(err, domainroom.ErrRoomNotFound) {
				msg = "Room not found"
			}
			responses.HandleError(c, err, msg)
			return
		}

		c.JSON(http.StatusOK, recordingres.NewListRecordingsResponse(recordings))
	}
}

// deleteRecording godoc
// @Summary      Delete a recording
// @Tags         Recordings
// @Produce      json
// @Param        id path string true "Recording ID"
// @Success      200 {object} responses.MessageResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /recordings/{id} [delete]
func deleteRecording(handler *handlers.RecordingHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := handler.DeleteRecording(c.Request.Context(), id); err != nil {
			responses.HandleError(c, err, fmt.Sprintf("Error deleting recording '%s'", id))
			return
		}

		c.JSON(http.StatusOK, responses.MessageResponse{
			Message: fmt.Sprintf("Recording '%s' deleted successfully", id),
		})
	}
}

// getRecordingURL godoc
// @Summary      Get a recording URL
// @Description  Returns a URL from which the recording can be played.
// @Tags         Recordings
// @Produce      json
// @Param        id path string true "Recording ID"
// @Success      200 {object} recordingres.RecordingURLResponse
// @Failure      404 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /recordings/{id}/url [get]
func getRecordingURL(handler *handlers.RecordingHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		url, err := handler.GetRecordingURL(c.Request.Context(), id)
		if err != nil {
			responses.HandleError(c, err, fmt.Sprintf("Error fetching URL for recording '%s'", id))
			return
		}

		c.JSON(http.StatusOK, recordingres.RecordingURLResponse{URL: url})
	}
}

// getRecordingMedia godoc
// @Summary      Stream recording media
// @Description  Streams the recording file. Range requests are forwarded upstream.
// @Tags         Recordings
// @Produce      octet-stream
// @Param        id path string true "Recording ID"
// @Param        Range header string false "Byte range"
// @Success      200 {file} binary
// @Success      206 {file} binary
// @Failure      404 {object} responses.ErrorResponse
// @Failure      416 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Security     BearerAuth
// @Router       /recordings/{id}/media [get]
func getRecordingMedia(handler *handlers.RecordingHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		media, err := handler.OpenRecordingMedia(c.Request.Context(), id, c.GetHeader("Range"))
		if err != nil {
			responses.HandleError(c, err, fmt.Sprintf("Error fetching media for recording '%s'", id))
			return
		}
		defer media.Body.Close()

		contentLength := int64(-1)
		if v := media.Header.Get("Content-Length"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				contentLength = n
			}
		}
		contentType := media.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		extra := make(map[string]string, len(forwardedMediaHeaders))
		for _, h := range forwardedMediaHeaders {
			if v := media.Header.Get(h); v != "" {
				extra[h] = v
			}
		}

		c.DataFromReader(media.StatusCode, contentLength, contentType, media.Body, extra)
	}
}
