package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trend-studio/services"
)

// GetTrendsHandler serves the trend list for a category and optional keyword.
// refresh=true bypasses the cache. An empty list is a normal answer.
func GetTrendsHandler(svc *services.TrendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "General")
		keyword := c.Query("keyword")
		refresh := c.Query("refresh") == "true"

		topics := svc.GetTrends(c.Request.Context(), sessionID(c), category, keyword, refresh)
		c.JSON(http.StatusOK, gin.H{"topics": topics})
	}
}
