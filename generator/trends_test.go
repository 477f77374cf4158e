package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trend-studio/generator"
)

func TestParseTrendingTopicsMalformedYieldsEmpty(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"title":"an object, not an array"}`,
		`[{"title": 42}]`,
	} {
		topics := generator.ParseTrendingTopics([]byte(raw))
		assert.NotNil(t, topics, "input %q", raw)
		assert.Empty(t, topics, "input %q", raw)
	}
}

func TestParseTrendingTopicsKeepsOrderAndBackfillsIDs(t *testing.T) {
	raw := `[
		{"id":"t1","title":"First","source":"Reddit","difficulty":"Easy","intent":"info","searchVolume":"High","category":"Tech","trendingSince":"today"},
		{"title":"Second","source":"News","difficulty":"Hard","intent":"buy","searchVolume":"Low","category":"Tech","trendingSince":"yesterday","sourceUrl":"https://example.com/a"},
		{"id":"t3","title":"  ","source":"Google","difficulty":"Medium","intent":"","searchVolume":"","category":"","trendingSince":""}
	]`

	topics := generator.ParseTrendingTopics([]byte(raw))
	assert.Len(t, topics, 2)
	assert.Equal(t, "First", topics[0].Title)
	assert.Equal(t, "t1", topics[0].ID)
	assert.Equal(t, "Second", topics[1].Title)
	assert.NotEmpty(t, topics[1].ID, "missing id must be backfilled")
	assert.Equal(t, "https://example.com/a", topics[1].SourceURL)
}

func TestParseTrendingTopicsNormalizesUnknownSources(t *testing.T) {
	raw := `[
		{"id":"t1","title":"First","source":"Reddit"},
		{"id":"t2","title":"Second","source":"Hacker News"},
		{"id":"t3","title":"Third","source":""}
	]`

	topics := generator.ParseTrendingTopics([]byte(raw))
	assert.Len(t, topics, 3)
	assert.Equal(t, "Reddit", topics[0].Source)
	assert.Equal(t, "News", topics[1].Source, "sources outside the whitelist collapse to News")
	assert.Equal(t, "News", topics[2].Source)
}
