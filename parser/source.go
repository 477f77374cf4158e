package parser

import (
	"context"
	"io"
	"net/http"

	"trend-studio/logger"
	"trend-studio/renderer"
)

// maxExcerptRunes bounds how much source text rides along in a prompt.
const maxExcerptRunes = 4000

// SourceExcerpt fetches a topic's source URL and returns cleaned article text
// to ground the draft prompt. A plain GET is tried first; when extraction
// stays thin (client-rendered page) a headless render is attempted. Grounding
// is best effort: any failure logs and returns "".
func SourceExcerpt(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}

	htmlStr, err := fetchHTML(ctx, url)
	if err == nil {
		if a, err := ExtractFromHTML(htmlStr); err == nil {
			return clip(a.PlainText)
		}
	}

	rendered, err := renderer.RenderHTML(url)
	if err != nil {
		logger.WarnWithFields("source fetch failed, drafting without grounding", logger.Fields{
			"url":   url,
			"error": err.Error(),
		})
		return ""
	}
	a, err := ExtractFromHTML(rendered)
	if err != nil {
		logger.WarnWithFields("source extraction failed, drafting without grounding", logger.Fields{
			"url":   url,
			"error": err.Error(),
		})
		return ""
	}
	return clip(a.PlainText)
}

func fetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func clip(s string) string {
	rs := []rune(s)
	if len(rs) <= maxExcerptRunes {
		return s
	}
	return string(rs[:maxExcerptRunes])
}
