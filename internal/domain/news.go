package domain

import (
	"context"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_news_service.go -package mocks github.com/synthapp/synth/internal/domain NewsService
//go:generate mockgen -destination mocks/mock_news_fetcher.go -package mocks github.com/synthapp/synth/internal/domain NewsFetcher

type NewsSource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	DisplayName string `json:"display_name"`
}

// NewsSources are the RSS feeds aggregated by the news module
var NewsSources = []NewsSource{
	{Name: "pitchfork", URL: "https://pitchfork.com/rss/news/", DisplayName: "Pitchfork"},
	{Name: "rollingstone", URL: "https://www.rollingstone.com/music/rss/", DisplayName: "Rolling Stone"},
	{Name: "nme", URL: "https://www.nme.com/music/feed/", DisplayName: "NME"},
	{Name: "billboard", URL: "https://www.billboard.com/feed/rss", DisplayName: "Billboard"},
}

type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	PubDate     time.Time `json:"pub_date"`
	Source      string    `json:"source"`
	ImageURL    string    `json:"image_url,omitempty"`
	Author      string    `json:"author,omitempty"`
}

var musicKeywords = []string{
	"music", "song", "album", "artist", "band", "concert", "tour", "live music",
	"musician", "singer", "guitarist", "drummer", "bassist", "pianist", "vocalist",
	"rock", "pop", "hip hop", "rap", "jazz", "blues", "country", "electronic",
	"indie", "alternative", "metal", "punk", "reggae", "soul", "r&b", "folk",
	"festival", "gig", "venue", "music video", "single", "ep", "soundtrack",
	"record label", "music producer", "dj", "remix", "cover", "collaboration",
	"music industry", "streaming", "spotify", "apple music", "billboard",
	"grammy", "mtv", "music awards", "chart", "top 40", "radio", "playlist",
}

var nonMusicKeywords = []string{
	"game", "gaming", "video game", "xbox", "playstation", "nintendo",
	"movie", "film", "tv show", "television", "series", "netflix",
	"sports", "football", "basketball", "soccer", "baseball", "tennis",
	"politics", "election", "president", "government", "political",
	"technology", "tech", "computer", "software", "hardware", "iphone",
	"business", "economy", "finance", "stock", "market", "crypto",
	"food", "restaurant", "recipe", "cooking", "chef",
	"fashion", "clothing", "style", "beauty", "makeup",
	"travel", "vacation", "hotel", "flight", "tourism",
}

// IsMusicRelated keeps an article when no excluded keyword appears and at
// least one music keyword does. Matching is substring based.
func IsMusicRelated(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range nonMusicKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	for _, kw := range musicKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FilterBySource keeps the articles of one source. "all" and unknown
// sources return the input unchanged.
func FilterBySource(articles []*NewsArticle, source string) []*NewsArticle {
	if source == "" || source == "all" {
		return articles
	}
	var display string
	for _, s := range NewsSources {
		if s.Name == source {
			display = s.DisplayName
		}
	}
	if display == "" {
		return articles
	}
	filtered := make([]*NewsArticle, 0, len(articles))
	for _, a := range articles {
		if a.Source == display {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// NewsFetcher downloads and parses one RSS feed
type NewsFetcher interface {
	FetchSource(ctx context.Context, source NewsSource) ([]*NewsArticle, error)
}

type NewsService interface {
	ListNews(ctx context.Context, source string) ([]*NewsArticle, error)
	Sources() []NewsSource
}
