package publisher

import (
	"fmt"
	"regexp"
	"strings"

	"trend-studio/models"
)

// The output targets rich-text paste and the Blogger editor, both of which
// strip anything fancy, so only plain tags with inline styles are emitted.
var (
	reH1     = regexp.MustCompile(`(?m)^# (.*)$`)
	reH2     = regexp.MustCompile(`(?m)^## (.*)$`)
	reH3     = regexp.MustCompile(`(?m)^### (.*)$`)
	reBold   = regexp.MustCompile(`\*\*(.*)\*\*`)
	reItalic = regexp.MustCompile(`\*(.*)\*`)
	reListItem = regexp.MustCompile(`(?m)^- (.*)$`)
)

const imgStyle = `max-width: 100%; height: auto; border-radius: 12px;`

// ConvertToFullHTML converts a draft's markdown body and images into one
// self-contained HTML string for clipboard copy or direct publishing.
//
// The second image is inserted textually right after the first </h2> in the
// accumulated output; when no h2 exists it is appended at the end. The JSON-LD
// schema rides along in a hidden div so it survives a paste without showing up.
// No escaping is applied beyond what the patterns imply: content comes from a
// single trusted generation pipeline, never from arbitrary user input.
func ConvertToFullHTML(blog *models.GeneratedBlog) string {
	var html string

	if len(blog.Images) > 0 {
		html += fmt.Sprintf(
			`<div style="text-align: center; margin-bottom: 30px;"><img src="%s" border="0" style="%s" alt="%s" /></div>`,
			blog.Images[0].URL, imgStyle, blog.Title,
		)
	}

	content := blog.Content
	content = reH1.ReplaceAllString(content, "<h1>$1</h1>")
	content = reH2.ReplaceAllString(content, "<h2>$1</h2>")
	content = reH3.ReplaceAllString(content, "<h3>$1</h3>")
	content = reBold.ReplaceAllString(content, "<strong>$1</strong>")
	content = reItalic.ReplaceAllString(content, "<em>$1</em>")
	content = reListItem.ReplaceAllString(content, "<li>$1</li>")

	var b strings.Builder
	for _, block := range strings.Split(content, "\n\n") {
		if strings.HasPrefix(block, "<h") || strings.HasPrefix(block, "<li") {
			b.WriteString(block)
			continue
		}
		b.WriteString("<p>")
		b.WriteString(block)
		b.WriteString("</p>")
	}
	html += b.String()

	if len(blog.Images) > 1 {
		midImg := fmt.Sprintf(
			`<div style="text-align: center; margin: 30px 0;"><img src="%s" border="0" style="%s" /></div>`,
			blog.Images[1].URL, imgStyle,
		)
		if idx := strings.Index(html, "</h2>"); idx != -1 {
			split := idx + len("</h2>")
			html = html[:split] + midImg + html[split:]
		} else {
			html += midImg
		}
	}

	if blog.SEOData.Schema != "" {
		html += fmt.Sprintf(`<div style="display:none !important;">%s</div>`, blog.SEOData.Schema)
	}

	return html
}
