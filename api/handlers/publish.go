package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trend-studio/dto"
	"trend-studio/models"
	"trend-studio/services"
)

// GetSettingsHandler returns the session's publisher settings.
func GetSettingsHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svc.Get(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.NewSettingsDTO(settings))
	}
}

// PutSettingsHandler replaces the session's publisher settings.
func PutSettingsHandler(svc *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BlogID        string `json:"blogId"`
			OAuthClientID string `json:"oauthClientId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		settings, err := svc.Put(c.Request.Context(), sessionID(c), req.BlogID, req.OAuthClientID)
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.NewSettingsDTO(settings))
	}
}

// AuthURLHandler returns the OAuth consent URL for the configured client id.
func AuthURLHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirectURI := c.Query("redirect_uri")
		if redirectURI == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "redirect_uri is required"})
			return
		}

		url, err := svc.AuthURL(c.Request.Context(), sessionID(c), redirectURI)
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// ExchangeCodeHandler trades an authorization code for an access token. The
// token goes back to the browser; the server keeps nothing.
func ExchangeCodeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Code        string `json:"code" binding:"required"`
			RedirectURI string `json:"redirect_uri" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and redirect_uri are required"})
			return
		}

		token, err := svc.ExchangeCode(c.Request.Context(), sessionID(c), req.Code, req.RedirectURI)
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

// PublishHandler posts the active draft to the configured blog.
func PublishHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			AccessToken string `json:"access_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "access_token is required"})
			return
		}

		post, err := svc.Publish(c.Request.Context(), sessionID(c), req.AccessToken)
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.PublishResultDTO{PostID: post.ID, URL: post.URL, Title: post.Title})
	}
}

// PublishHistoryHandler lists the session's publish attempts, newest first.
func PublishHistoryHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := svc.History(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		if history == nil {
			history = []models.PublishLog{}
		}
		c.JSON(http.StatusOK, gin.H{"history": history})
	}
}
