// Package preview renders a draft into the two display shapes the studio
// offers: a content-discovery feed card and a full article. Both are pure
// transforms of the same data; only the container chrome differs.
package preview

import (
	"strings"

	"trend-studio/models"
)

// Mode selects the presentation context.
type Mode string

const (
	ModeFeed    Mode = "feed"
	ModeArticle Mode = "article"
)

// Rendering is the layout-ready decomposition of a draft.
type Rendering struct {
	Mode            Mode     `json:"mode"`
	Title           string   `json:"title"`
	HeaderImage     string   `json:"header_image,omitempty"`
	LeadParagraphs  []string `json:"lead_paragraphs"`
	MidImage        string   `json:"mid_image,omitempty"`
	RestParagraphs  []string `json:"rest_paragraphs"`
	MetaDescription string   `json:"meta_description,omitempty"`
	WordCount       int      `json:"word_count"`
}

// leadCount is how many paragraphs appear above the mid-article image.
const leadCount = 3

// Render splits the draft body into paragraphs on blank lines and arranges
// them around the two image slots.
func Render(blog *models.GeneratedBlog, mode Mode) Rendering {
	paras := Paragraphs(blog.Content)

	r := Rendering{
		Mode:            mode,
		Title:           blog.Title,
		MetaDescription: blog.SEOData.MetaDescription,
		WordCount:       WordCount(blog.Content),
	}
	if len(blog.Images) > 0 {
		r.HeaderImage = blog.Images[0].URL
	}
	if len(blog.Images) > 1 {
		r.MidImage = blog.Images[1].URL
	}

	if len(paras) <= leadCount {
		r.LeadParagraphs = paras
		r.RestParagraphs = []string{}
		return r
	}
	r.LeadParagraphs = paras[:leadCount]
	r.RestParagraphs = paras[leadCount:]
	return r
}

// Paragraphs splits text on blank-line delimiters, dropping empty blocks.
func Paragraphs(text string) []string {
	blocks := strings.Split(text, "\n\n")
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

// WordCount is the advisory whitespace-delimited token count shown as a badge
// next to the 420-550 word target. It is not an enforced invariant.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
