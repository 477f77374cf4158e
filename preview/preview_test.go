package preview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trend-studio/models"
	"trend-studio/preview"
)

func TestRenderSplitsAroundMidImage(t *testing.T) {
	blog := &models.GeneratedBlog{
		Title:   "Post",
		Content: "one\n\ntwo\n\nthree\n\nfour\n\nfive",
		Images: []models.BlogImage{
			{URL: "h.png"}, {URL: "m.png"},
		},
	}

	r := preview.Render(blog, preview.ModeFeed)
	assert.Equal(t, preview.ModeFeed, r.Mode)
	assert.Equal(t, "h.png", r.HeaderImage)
	assert.Equal(t, "m.png", r.MidImage)
	assert.Equal(t, []string{"one", "two", "three"}, r.LeadParagraphs)
	assert.Equal(t, []string{"four", "five"}, r.RestParagraphs)
}

func TestRenderShortBody(t *testing.T) {
	blog := &models.GeneratedBlog{Title: "Post", Content: "only\n\ntwo paragraphs"}

	r := preview.Render(blog, preview.ModeArticle)
	assert.Equal(t, []string{"only", "two paragraphs"}, r.LeadParagraphs)
	assert.Empty(t, r.RestParagraphs)
	assert.Empty(t, r.HeaderImage)
}

func TestParagraphsDropsEmptyBlocks(t *testing.T) {
	paras := preview.Paragraphs("a\n\n\n\nb\n\n  \n\nc")
	assert.Equal(t, []string{"a", "b", "c"}, paras)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, preview.WordCount(""))
	assert.Equal(t, 5, preview.WordCount("one two\nthree  four\tfive"))
}
