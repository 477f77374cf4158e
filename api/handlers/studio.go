package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trend-studio/dto"
	"trend-studio/models"
	"trend-studio/preview"
	"trend-studio/services"
)

// GenerateVariationsHandler drafts a topic in all four variation styles.
// The topic comes either by id from the current trend list or as free text.
func GenerateVariationsHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			TopicID string `json:"topic_id"`
			Topic   string `json:"topic"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		res, err := svc.GenerateVariations(c.Request.Context(), sessionID(c), services.VariationsInput{
			TopicID: req.TopicID,
			Topic:   req.Topic,
		})
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.NewVariationsDTO(res.TopicTitle, res.Drafts, res.Failures))
	}
}

// GenerateDraftHandler drafts a topic in one chosen style and opens the editor.
func GenerateDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Topic string `json:"topic" binding:"required"`
			Style string `json:"style" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic and style are required"})
			return
		}

		blog, err := svc.GenerateSingle(c.Request.Context(), sessionID(c), req.Topic, models.BlogStyle(req.Style))
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// SelectVariationHandler promotes one generated variation to the active draft.
func SelectVariationHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			DraftID string `json:"draft_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "draft_id is required"})
			return
		}

		blog, err := svc.SelectVariation(sessionID(c), req.DraftID)
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// GetDraftHandler returns the session's active draft and view state.
func GetDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, state, err := svc.CurrentDraft(sessionID(c))
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.DraftStateDTO{State: string(state), Draft: dto.NewDraftDTO(blog)})
	}
}

// UpdateDraftHandler applies manual edits: title, body, or one image slot.
func UpdateDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Title     *string `json:"title"`
			Content   *string `json:"content"`
			ImageSlot *int    `json:"image_slot"`
			ImageURL  *string `json:"image_url"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		blog, err := svc.UpdateDraft(sessionID(c), services.UpdateDraftInput{
			Title:     req.Title,
			Content:   req.Content,
			ImageSlot: req.ImageSlot,
			ImageURL:  req.ImageURL,
		})
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// RewriteDraftHandler regenerates the active draft in another style.
func RewriteDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Style string `json:"style" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "style is required"})
			return
		}

		blog, err := svc.RewriteDraft(c.Request.Context(), sessionID(c), models.BlogStyle(req.Style))
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// RefineDraftHandler applies a free-form instruction to the active draft.
func RefineDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Instruction string `json:"instruction" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "instruction is required"})
			return
		}

		blog, err := svc.RefineDraft(c.Request.Context(), sessionID(c), req.Instruction)
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// ExtendDraftHandler appends a section on a new topic to the active draft.
func ExtendDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Topic string `json:"topic" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
			return
		}

		blog, err := svc.ExtendDraft(c.Request.Context(), sessionID(c), req.Topic)
		if err != nil {
			respondError(c, err, http.StatusBadGateway)
			return
		}
		c.JSON(http.StatusOK, dto.NewDraftDTO(blog))
	}
}

// PreviewDraftHandler renders the draft for the feed or article view.
func PreviewDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		mode := preview.Mode(c.DefaultQuery("mode", string(preview.ModeFeed)))
		if mode != preview.ModeFeed && mode != preview.ModeArticle {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be feed or article"})
			return
		}

		rendering, err := svc.Preview(sessionID(c), mode)
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, rendering)
	}
}

// DraftHTMLHandler returns the publish-ready HTML of the active draft.
func DraftHTMLHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		html, err := svc.HTML(sessionID(c))
		if err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"html": html})
	}
}

// SaveDraftHandler snapshots the active draft to storage.
func SaveDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.SaveDraft(c.Request.Context(), sessionID(c)); err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	}
}

// DiscardSavedDraftHandler removes the session's stored snapshot.
func DiscardSavedDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DiscardSavedDraft(c.Request.Context(), sessionID(c)); err != nil {
			respondError(c, err, http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"discarded": true})
	}
}

// SavedDraftHandler loads the session's stored snapshot.
func SavedDraftHandler(svc *services.StudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := svc.SavedDraft(c.Request.Context(), sessionID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no saved draft"})
			return
		}
		c.JSON(http.StatusOK, dto.NewSnapshotDTO(snap))
	}
}
