package generator

import (
	"fmt"
	"strings"
	"time"

	"trend-studio/models"
)

const draftSystemInstruction = `You are an expert human blogger and SEO specialist.
STYLE GUIDE:
- Language: Simple, conversational, everyday English. Grade 6-8 reading level.
- Tone: Engaging, helpful, and direct.
- Structure: Short paragraphs (2-3 sentences max). Clear H2/H3 headers.
- NO AI WORDS: Avoid "delve," "moreover," "in conclusion," "comprehensive," "essential," "unleash," "navigate."
- Human Touch: Start with a personal-feeling hook.
- SEO: Optimize for natural search intent.
- Formatting: Use markdown for headers and lists.`

// styleNotes steers each writing style without changing the shared guide.
var styleNotes = map[models.BlogStyle]string{
	models.StyleNews:           "Report it like a breaking news piece: lead with what happened, then why it matters.",
	models.StyleHowTo:          "Write it as a step-by-step guide with numbered, actionable steps.",
	models.StyleOpinion:        "Take a clear stance and argue it in first person.",
	models.StyleListicle:       "Structure the whole post as a numbered list with a short intro and outro.",
	models.StyleProfessional:   "Keep the tone polished and businesslike, suitable for an industry publication.",
	models.StyleConversational: "Write like you're talking to a friend, questions and asides included.",
	models.StyleStorytelling:   "Open with a short anecdote and weave the facts through a narrative.",
	models.StyleTechnical:      "Go deeper on specifics and terminology; assume a technically literate reader.",
}

func trendsPrompt(category, keyword string, headlines []string) string {
	now := time.Now()
	currentDate := now.Format("Monday, January 2, 2006")

	searchContext := fmt.Sprintf("the category: %q", category)
	if strings.TrimSpace(keyword) != "" {
		searchContext = fmt.Sprintf("the specific keyword: %q (within the %s space)", keyword, category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `CRITICAL: Today is %s.
Act as a real-time news analyst. Using Google Search, identify exactly 20 of the most viral, surging, and LATEST trending topics for today related to %s.

STRICT RULES:
1. IGNORE any results from %d or earlier. Only %d topics are allowed.
2. TARGET SOURCES: Prioritize finding trends reported on or discussed in: 9to5google.com, electrek.co, 9to5mac.com, and english.patrikatimes.in, alongside major platforms like Reddit, Twitter, and Google Trends.
3. Topics must be "Breaking News," "Fresh Product Launches," or "Viral Social Media Trends" from the last 48 hours.
4. Analyze each for SEO potential.
`, currentDate, searchContext, now.Year()-1, now.Year())

	if len(headlines) > 0 {
		b.WriteString("\nFor extra freshness, these headlines were pulled from the target outlets' feeds in the last hours:\n")
		for _, h := range headlines {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}

	b.WriteString(`
Return the list in the specified JSON format.
For "source", strictly use one of: 'Google', 'Reddit', 'Twitter', 'Youtube', 'News', '9to5google.com', 'electrek.co', '9to5mac.com', 'english.patrikatimes.in'.
For "difficulty", strictly use one of: 'Easy', 'Medium', 'Hard'.`)

	return b.String()
}

func draftPrompt(topicTitle string, style models.BlogStyle, sourceExcerpt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %q\nWrite a high-quality blog post in the %s style. %s\n", topicTitle, style, styleNotes[style])
	if sourceExcerpt != "" {
		fmt.Fprintf(&b, "\nGround the post in this source material (do not copy it verbatim):\n---\n%s\n---\n", sourceExcerpt)
	}
	b.WriteString(`
Return a JSON object containing:
- title: Catchy, emotion-neutral SEO title.
- content: Full markdown content body, between 420 and 550 words.
- metaTitle: 50-60 characters SEO title.
- metaDescription: 150-160 characters summary.
- slug: URL-friendly version of the title.
- schema: valid Article JSON-LD schema.
- metrics: Object with seoScore, keywordScore, readabilityScore, aiScore, humanScore (0-100 integers).`)
	return b.String()
}

func refinePrompt(blog *models.GeneratedBlog, instruction string) string {
	return fmt.Sprintf(`You are refining an existing blog post per the author's instruction.

CURRENT TITLE: %s

CURRENT BODY (markdown):
---
%s
---

INSTRUCTION: %s

Apply the instruction while keeping the post's voice and structure intact.
Return a JSON object with the same shape as before: title, content, metaTitle,
metaDescription, slug, schema, and metrics (seoScore, keywordScore,
readabilityScore, aiScore, humanScore as 0-100 integers).`, blog.Title, blog.Content, instruction)
}

func extendPrompt(blog *models.GeneratedBlog, newTopic string) string {
	return fmt.Sprintf(`Extend the blog post below with a new section about %q.

CURRENT BODY (markdown):
---
%s
---

Keep everything already written, append the new section with its own H2 header,
and keep the total under 550 words. Return a JSON object with: content (the full
updated markdown body) and metrics (seoScore, keywordScore, readabilityScore,
aiScore, humanScore as 0-100 integers).`, newTopic, blog.Content)
}

// imagePrompts returns the header and mid-article image prompts for a topic.
func imagePrompts(topicTitle string) [2]string {
	return [2]string{
		fmt.Sprintf("High resolution realistic lifestyle photography related to %s. Natural lighting, blog header style. No text.", topicTitle),
		fmt.Sprintf("Close-up realistic detail shot related to %s. Cinematic lighting, no text.", topicTitle),
	}
}
