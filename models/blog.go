package models

// BlogStyle tags the writing style a draft was generated with.
type BlogStyle string

const (
	StyleNews           BlogStyle = "News"
	StyleHowTo          BlogStyle = "How-to"
	StyleOpinion        BlogStyle = "Opinion"
	StyleListicle       BlogStyle = "Listicle"
	StyleProfessional   BlogStyle = "Professional"
	StyleConversational BlogStyle = "Conversational"
	StyleStorytelling   BlogStyle = "Storytelling"
	StyleTechnical      BlogStyle = "Technical"
)

// VariationStyles is the fixed style set used for parallel variation generation.
var VariationStyles = []BlogStyle{StyleNews, StyleHowTo, StyleOpinion, StyleListicle}

// AllStyles lists every style the editor can rewrite into.
var AllStyles = []BlogStyle{
	StyleNews, StyleHowTo, StyleOpinion, StyleListicle,
	StyleProfessional, StyleConversational, StyleStorytelling, StyleTechnical,
}

// ValidStyle reports whether s is one of the known styles.
func ValidStyle(s BlogStyle) bool {
	for _, v := range AllStyles {
		if v == s {
			return true
		}
	}
	return false
}

// FallbackImageURL backfills image slots when generation fails so a draft
// always renders with a header and a mid-article image.
const FallbackImageURL = "https://images.unsplash.com/photo-1499750310107-5fef28a66643?w=1200&q=80"

// BlogImage is an image slot of a draft: a remote URL or a data URI, plus a
// flag marking whether the image generator produced it.
type BlogImage struct {
	URL           string `bson:"url" json:"url"`
	IsAIGenerated bool   `bson:"is_ai_generated" json:"isAiGenerated"`
}

// SEOData is the SEO metadata block owned by exactly one GeneratedBlog.
type SEOData struct {
	MetaTitle       string `bson:"meta_title" json:"metaTitle"`
	MetaDescription string `bson:"meta_description" json:"metaDescription"`
	Slug            string `bson:"slug" json:"slug"`
	Schema          string `bson:"schema" json:"schema"`
}

// BlogMetrics holds the five advisory 0-100 scores returned by the model.
type BlogMetrics struct {
	SEOScore         int `bson:"seo_score" json:"seoScore"`
	KeywordScore     int `bson:"keyword_score" json:"keywordScore"`
	ReadabilityScore int `bson:"readability_score" json:"readabilityScore"`
	AIScore          int `bson:"ai_score" json:"aiScore"`
	HumanScore       int `bson:"human_score" json:"humanScore"`
}

// GeneratedBlog is one drafted post. It exclusively owns its images, SEO
// metadata and metrics; the editor mutates it in place.
type GeneratedBlog struct {
	ID         string      `bson:"id" json:"id"`
	Title      string      `bson:"title" json:"title"`
	Content    string      `bson:"content" json:"content"`
	Style      BlogStyle   `bson:"style" json:"style"`
	Images     []BlogImage `bson:"images" json:"images"`
	SEOData    SEOData     `bson:"seo_data" json:"seoData"`
	Metrics    BlogMetrics `bson:"metrics" json:"metrics"`
	References []string    `bson:"references,omitempty" json:"references,omitempty"`
}

// AppendReferences adds URIs to the reference list, skipping duplicates and
// empty entries. Order of first appearance is preserved.
func (b *GeneratedBlog) AppendReferences(uris []string) {
	seen := make(map[string]struct{}, len(b.References))
	for _, r := range b.References {
		seen[r] = struct{}{}
	}
	for _, u := range uris {
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		b.References = append(b.References, u)
	}
}
