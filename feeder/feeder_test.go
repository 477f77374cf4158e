package feeder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend-studio/config"
	"trend-studio/feeder"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Outlet</title>
    <item>
      <title>New phone launches today</title>
      <link>https://outlet.example/phone</link>
      <pubDate>Mon, 25 Aug 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>EV prices keep falling</title>
      <link>https://outlet.example/ev</link>
      <pubDate>Sun, 24 Aug 2025 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Older story</title>
      <link>https://outlet.example/old</link>
      <pubDate>Sat, 23 Aug 2025 08:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetchHeadlinesWithLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	items, err := feeder.FetchHeadlines(srv.URL, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "New phone launches today", items[0].Title)
	assert.False(t, items[0].PublishedAt.IsZero())
}

func TestCollectRecentTitlesSkipsFailingFeeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	feeds := []config.TrendFeed{
		{Name: "good", RSSURL: srv.URL},
		{Name: "down", RSSURL: "http://127.0.0.1:1/feed"},
	}

	titles := feeder.CollectRecentTitles(feeds, 2)
	assert.Equal(t, []string{"New phone launches today", "EV prices keep falling"}, titles)
}
