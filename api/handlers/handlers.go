package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trend-studio/publisher"
	"trend-studio/services"
)

// SessionHeader carries the browser session id. Absent means the default
// session, so a single-user setup works with no client support.
const SessionHeader = "X-Studio-Session"

func sessionID(c *gin.Context) string {
	return c.GetHeader(SessionHeader)
}

// respondError maps service errors to HTTP statuses. fallback applies to
// errors with no specific mapping: 502 for model-backed paths, 500 otherwise.
func respondError(c *gin.Context, err error, fallback int) {
	switch {
	case errors.Is(err, services.ErrOperationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnknownTopic),
		errors.Is(err, services.ErrUnknownDraft),
		errors.Is(err, services.ErrInvalidStyle),
		errors.Is(err, services.ErrInvalidImageSlot),
		errors.Is(err, services.ErrSettingsMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAllVariationsFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		var pubErr *publisher.PublishError
		if errors.As(err, &pubErr) {
			body := gin.H{"error": pubErr.Message}
			if pubErr.Guidance != "" {
				body["guidance"] = pubErr.Guidance
			}
			c.JSON(http.StatusBadGateway, body)
			return
		}
		c.JSON(fallback, gin.H{"error": err.Error()})
	}
}
