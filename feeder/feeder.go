package feeder

import (
	"crypto/tls"
	"net/http"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"trend-studio/config"
	"trend-studio/logger"
)

type Headline struct {
	Outlet      string
	Title       string
	Link        string
	PublishedAt time.Time
}

// FetchHeadlines fetches recent items from one RSS feed.
// If limit is greater than 0, it returns only the first limit items.
func FetchHeadlines(rssURL string, limit int) ([]Headline, error) {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // some outlets serve odd cert chains
		},
	}

	fp := gofeed.NewParser()
	fp.Client = httpClient

	feed, err := fp.ParseURL(rssURL)
	if err != nil {
		return nil, err
	}

	var items []Headline
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, Headline{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// CollectRecentTitles pulls up to perFeed headlines from every configured
// trend feed and returns their titles, newest first. A failing feed is logged
// and skipped; grounding headlines are an enrichment, not a requirement.
func CollectRecentTitles(feeds []config.TrendFeed, perFeed int) []string {
	var all []Headline
	for _, f := range feeds {
		items, err := FetchHeadlines(f.RSSURL, perFeed)
		if err != nil {
			logger.WarnWithFields("trend feed fetch failed", logger.Fields{
				"feed":  f.Name,
				"error": err.Error(),
			})
			continue
		}
		for i := range items {
			items[i].Outlet = f.Name
		}
		all = append(all, items...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	titles := make([]string, 0, len(all))
	for _, h := range all {
		titles = append(titles, h.Title)
	}
	return titles
}
