package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/genai"

	"trend-studio/logger"
	"trend-studio/models"
)

// GenerateImages runs the two image calls for a topic (header shot, close-up
// detail shot, both 16:9) and returns whatever succeeded as data URIs.
// Failures are logged and skipped; the caller back-fills with the stock image.
func (c *Client) GenerateImages(ctx context.Context, topicTitle string) []models.BlogImage {
	prompts := imagePrompts(topicTitle)
	images := make([]models.BlogImage, 0, len(prompts))

	for i, prompt := range prompts {
		start := time.Now()
		result, err := c.genai.Models.GenerateImages(
			ctx,
			c.imageModel,
			prompt,
			&genai.GenerateImagesConfig{
				NumberOfImages: 1,
				AspectRatio:    "16:9",
			},
		)
		c.recordImage(ctx, fmt.Sprintf("generate_image_%d", i+1), prompt, err, start)
		if err != nil {
			logger.WarnWithFields("image generation failed, slot will be back-filled", logger.Fields{
				"slot":  i + 1,
				"error": err.Error(),
			})
			continue
		}

		uri := imageDataURI(result)
		if uri == "" {
			logger.WarnWithFields("image response carried no image data", logger.Fields{"slot": i + 1})
			continue
		}
		images = append(images, models.BlogImage{URL: uri, IsAIGenerated: true})
	}

	return images
}

// recordImage audits one image call. The image API reports no token usage, so
// only latency and outcome are stored.
func (c *Client) recordImage(ctx context.Context, op, prompt string, callErr error, start time.Time) {
	if c.audit == nil {
		return
	}
	entry := models.AILog{
		Operation:     op,
		ModelName:     c.imageModel,
		Success:       callErr == nil,
		PromptExcerpt: truncate(prompt, 500),
		RequestedAt:   start,
		CompletedAt:   time.Now(),
		DurationMs:    time.Since(start).Milliseconds(),
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	}
	c.audit.Record(ctx, entry)
}

// ApplyImageFallback pads the draft's image list with the fixed stock image
// until it holds at least two entries. Back-filled slots are flagged as not
// AI generated.
func ApplyImageFallback(blog *models.GeneratedBlog) {
	for len(blog.Images) < 2 {
		blog.Images = append(blog.Images, models.BlogImage{
			URL:           models.FallbackImageURL,
			IsAIGenerated: false,
		})
	}
}

// imageDataURI converts the first generated image to a data URI, or "" when
// the response carries none.
func imageDataURI(result *genai.GenerateImagesResponse) string {
	if result == nil || len(result.GeneratedImages) == 0 {
		return ""
	}
	img := result.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return ""
	}
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.ImageBytes))
}
