package generator

import "google.golang.org/genai"

// Declared output schemas keep the model honest about shape; the parse side
// still validates because schema conformance is not a hard guarantee.

var trendsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeString},
			"title":         {Type: genai.TypeString},
			"source":        {Type: genai.TypeString},
			"difficulty":    {Type: genai.TypeString},
			"intent":        {Type: genai.TypeString},
			"searchVolume":  {Type: genai.TypeString},
			"category":      {Type: genai.TypeString},
			"trendingSince": {Type: genai.TypeString},
			"sourceUrl":     {Type: genai.TypeString},
		},
		Required: []string{"id", "title", "source", "difficulty", "intent", "searchVolume", "category", "trendingSince"},
	},
}

var metricsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"seoScore":         {Type: genai.TypeInteger},
		"keywordScore":     {Type: genai.TypeInteger},
		"readabilityScore": {Type: genai.TypeInteger},
		"aiScore":          {Type: genai.TypeInteger},
		"humanScore":       {Type: genai.TypeInteger},
	},
	Required: []string{"seoScore", "keywordScore", "readabilityScore", "aiScore", "humanScore"},
}

var draftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":           {Type: genai.TypeString},
		"content":         {Type: genai.TypeString},
		"metaTitle":       {Type: genai.TypeString},
		"metaDescription": {Type: genai.TypeString},
		"slug":            {Type: genai.TypeString},
		"schema":          {Type: genai.TypeString},
		"metrics":         metricsSchema,
	},
	Required: []string{"title", "content", "metaTitle", "metaDescription", "slug", "schema", "metrics"},
}

var extendSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"content": {Type: genai.TypeString},
		"metrics": metricsSchema,
	},
	Required: []string{"content", "metrics"},
}
