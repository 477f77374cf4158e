package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trend-studio/services"
)

// RecentAILogsHandler lists the newest generative-call audit entries.
func RecentAILogsHandler(svc *services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

		entries, err := svc.RecentCalls(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": entries})
	}
}
