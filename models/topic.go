package models

// TrendSources is the closed set of platforms a trending topic may originate
// from. Parsed topics outside the set are normalized to "News".
var TrendSources = []string{
	"Google", "Reddit", "Twitter", "Youtube", "News",
	"9to5google.com", "electrek.co", "9to5mac.com", "english.patrikatimes.in",
	"Google News", "NewsBytes", "The Verge",
}

// KnownTrendSource reports whether s is in the closed source set.
func KnownTrendSource(s string) bool {
	for _, v := range TrendSources {
		if v == s {
			return true
		}
	}
	return false
}

// TrendingTopic is one candidate subject for a post, parsed from the trend
// discovery response. Immutable once created; the whole list is discarded
// when a new fetch runs.
type TrendingTopic struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Source        string `json:"source"`
	Difficulty    string `json:"difficulty"`
	Intent        string `json:"intent"`
	SearchVolume  string `json:"searchVolume"`
	Category      string `json:"category"`
	TrendingSince string `json:"trendingSince"`
	SourceURL     string `json:"sourceUrl,omitempty"`
}
