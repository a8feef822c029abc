package responses

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/meet"
	"jan-server/services/meet-api/internal/utils/platformerrors"
)

// HandleError writes err as an error response.
//
// Upstream API errors keep their status and message. Domain sentinels map to
// 400 or 404 and everything else to 500; those cases answer with message.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()
	ctx := c.Request.Context()

	if apiErr, ok := meet.AsAPIError(err); ok {
		platformerrors.WriteHTTPError(c, platformerrors.NewUpstreamError(ctx, apiErr.StatusCode, apiErr.Message, err), logger)
		return
	}

	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		platformerrors.WriteHTTPError(c, platformerrors.NewError(ctx, platformerrors.LayerRoute, platformerrors.ErrorTypeNotFound, message, err), logger)
	case errors.Is(err, room.ErrRoomNameRequired), errors.Is(err, room.ErrRoomAlreadyExists):
		platformerrors.WriteHTTPError(c, platformerrors.NewError(ctx, platformerrors.LayerRoute, platformerrors.ErrorTypeValidation, message, err), logger)
	default:
		if pe := platformerrors.GetPlatformError(err); pe != nil {
			platformerrors.WriteHTTPError(c, pe, logger)
			return
		}
		platformerrors.WriteHTTPError(c, platformerrors.NewError(ctx, platformerrors.LayerRoute, platformerrors.ErrorTypeInternal, message, err), logger)
	}
}
