package router

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"trend-studio/api/handlers"
	"trend-studio/api/middleware"
	"trend-studio/db"
	"trend-studio/services"
)

// Deps carries every service the HTTP surface needs.
type Deps struct {
	Trends   *services.TrendService
	Studio   *services.StudioService
	Settings *services.SettingsService
	Auth     *services.AuthService
	Publish  *services.PublishService
	Audit    *services.AuditService

	// StaticDir holds the built browser bundle; empty disables static serving.
	StaticDir string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/trends", handlers.GetTrendsHandler(deps.Trends))

		studio := api.Group("/studio")
		{
			studio.POST("/variations", handlers.GenerateVariationsHandler(deps.Studio))
			studio.POST("/drafts", handlers.GenerateDraftHandler(deps.Studio))
			studio.POST("/select", handlers.SelectVariationHandler(deps.Studio))
			studio.GET("/draft", handlers.GetDraftHandler(deps.Studio))
			studio.PUT("/draft", handlers.UpdateDraftHandler(deps.Studio))
			studio.POST("/draft/rewrite", handlers.RewriteDraftHandler(deps.Studio))
			studio.POST("/draft/refine", handlers.RefineDraftHandler(deps.Studio))
			studio.POST("/draft/extend", handlers.ExtendDraftHandler(deps.Studio))
			studio.GET("/draft/preview", handlers.PreviewDraftHandler(deps.Studio))
			studio.GET("/draft/html", handlers.DraftHTMLHandler(deps.Studio))
			studio.POST("/draft/save", handlers.SaveDraftHandler(deps.Studio))
			studio.GET("/draft/saved", handlers.SavedDraftHandler(deps.Studio))
			studio.DELETE("/draft/saved", handlers.DiscardSavedDraftHandler(deps.Studio))
			studio.POST("/publish", handlers.PublishHandler(deps.Publish))
			studio.GET("/publish/history", handlers.PublishHistoryHandler(deps.Publish))
		}

		api.GET("/logs/ai", handlers.RecentAILogsHandler(deps.Audit))

		api.GET("/settings", handlers.GetSettingsHandler(deps.Settings))
		api.PUT("/settings", handlers.PutSettingsHandler(deps.Settings))

		authGroup := api.Group("/auth/blogger")
		{
			authGroup.GET("/url", handlers.AuthURLHandler(deps.Auth))
			authGroup.POST("/exchange", handlers.ExchangeCodeHandler(deps.Auth))
		}
	}

	// Static browser bundle with SPA fallback: unknown non-API paths serve
	// index.html so client-side routing works after a reload.
	if deps.StaticDir != "" {
		r.NoRoute(spaFallback(deps.StaticDir))
	}

	return r
}

func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
