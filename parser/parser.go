package parser

import (
	"fmt"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedArticle is the cleaned-up body of a source page, used to ground
// drafting on the topic's source URL.
type ParsedArticle struct {
	PlainText string
	TopImage  string
}

// minUsefulChars is the threshold below which an extraction result is treated
// as failed and the next extractor in the chain is tried.
const minUsefulChars = 200

// ExtractFromHTML runs the extraction chain (readability, then trafilatura,
// then goose) and returns the first result with a useful amount of text.
func ExtractFromHTML(htmlStr string) (*ParsedArticle, error) {
	if a, err := extractWithReadability(htmlStr); err == nil && len(a.PlainText) >= minUsefulChars {
		return a, nil
	}
	if a, err := extractWithTrafilatura(htmlStr); err == nil && len(a.PlainText) >= minUsefulChars {
		return a, nil
	}
	if a, err := extractWithGoose(htmlStr); err == nil && len(a.PlainText) >= minUsefulChars {
		return a, nil
	}
	return nil, fmt.Errorf("no extractor produced useful text")
}

func extractWithReadability(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainText: article.TextContent,
		TopImage:  article.Image,
	}, nil
}

func extractWithTrafilatura(htmlStr string) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedArticle{
		PlainText: article.ContentText,
		TopImage:  article.Metadata.Image,
	}, nil
}

func extractWithGoose(htmlStr string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainText: article.CleanedText,
		TopImage:  article.TopImage,
	}, nil
}
