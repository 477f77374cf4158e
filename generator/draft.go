package generator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"trend-studio/models"
)

// GenerateDraft writes one styled post for the topic. The 420-550 word range
// is a prompt-level request, not an enforced contract. Two image calls follow;
// each failure is tolerated and back-filled so the draft always carries at
// least a header and a mid-article image.
func (c *Client) GenerateDraft(ctx context.Context, topic models.TrendingTopic, style models.BlogStyle, sourceExcerpt string) (*models.GeneratedBlog, error) {
	prompt := draftPrompt(topic.Title, style, sourceExcerpt)
	start := time.Now()

	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.proModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: draftSystemInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    draftSchema,
		},
	)
	c.record(ctx, "generate_draft", c.proModel, prompt, result, err, start)
	if err != nil {
		return nil, err
	}

	payload, err := parseDraftPayload([]byte(result.Text()))
	if err != nil {
		return nil, err
	}

	blog := &models.GeneratedBlog{
		ID:      uuid.NewString(),
		Title:   payload.Title,
		Content: payload.Content,
		Style:   style,
		SEOData: models.SEOData{
			MetaTitle:       payload.MetaTitle,
			MetaDescription: payload.MetaDescription,
			Slug:            payload.Slug,
			Schema:          payload.Schema,
		},
		Metrics: payload.Metrics.toModel(),
	}
	blog.AppendReferences(groundingURIs(result))

	blog.Images = c.GenerateImages(ctx, topic.Title)
	ApplyImageFallback(blog)

	return blog, nil
}

// RefineDraft sends the current title/body plus an instruction and merges the
// replacement title, body, SEO metadata and metrics into blog in place.
// Accumulated references are preserved; new grounding URIs are appended
// without duplicates.
func (c *Client) RefineDraft(ctx context.Context, blog *models.GeneratedBlog, instruction string) error {
	prompt := refinePrompt(blog, instruction)
	start := time.Now()

	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.proModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: draftSystemInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    draftSchema,
		},
	)
	c.record(ctx, "refine_draft", c.proModel, prompt, result, err, start)
	if err != nil {
		return err
	}

	payload, err := parseDraftPayload([]byte(result.Text()))
	if err != nil {
		return err
	}

	blog.Title = payload.Title
	blog.Content = payload.Content
	blog.SEOData = models.SEOData{
		MetaTitle:       payload.MetaTitle,
		MetaDescription: payload.MetaDescription,
		Slug:            payload.Slug,
		Schema:          payload.Schema,
	}
	blog.Metrics = payload.Metrics.toModel()
	blog.AppendReferences(groundingURIs(result))
	return nil
}

// ExtendDraft appends a section about newTopic, bounded at a 550-word ceiling.
// Only the body and metrics are replaced; title, SEO data and images stay.
func (c *Client) ExtendDraft(ctx context.Context, blog *models.GeneratedBlog, newTopic string) error {
	prompt := extendPrompt(blog, newTopic)
	start := time.Now()

	result, err := c.genai.Models.GenerateContent(
		ctx,
		c.proModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: draftSystemInstruction}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    extendSchema,
		},
	)
	c.record(ctx, "extend_draft", c.proModel, prompt, result, err, start)
	if err != nil {
		return err
	}

	payload, err := parseExtendPayload([]byte(result.Text()))
	if err != nil {
		return err
	}

	blog.Content = payload.Content
	blog.Metrics = payload.Metrics.toModel()
	blog.AppendReferences(groundingURIs(result))
	return nil
}
