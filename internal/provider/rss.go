package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/internal/metrics"
	"github.com/synthapp/synth/pkg/logger"
	"github.com/synthapp/synth/pkg/tracing"
)

const (
	rssProviderName = "news"
	rssUserAgent    = "Mozilla/5.0 (compatible; SynthNewsBot/1.0)"
)

// RSSFetcher downloads a news feed and turns its items into articles
type RSSFetcher struct {
	httpClient *http.Client
	logger     logger.Logger
	now        func() time.Time
}

func NewRSSFetcher(timeout time.Duration, log logger.Logger) *RSSFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RSSFetcher{
		httpClient: tracing.WrapHTTPClient(&http.Client{Timeout: timeout}),
		logger:     log,
		now:        time.Now,
	}
}

func (f *RSSFetcher) FetchSource(ctx context.Context, source domain.NewsSource) ([]*domain.NewsArticle, error) {
	start := time.Now()
	articles, err := f.fetch(ctx, source)
	metrics.RecordProviderCall(rssProviderName, err, time.Since(start))
	if err != nil {
		f.logger.WithField("source", source.Name).Warn(fmt.Sprintf("Failed to fetch news feed: %v", err))
		return nil, err
	}
	return articles, nil
}

func (f *RSSFetcher) fetch(ctx context.Context, source domain.NewsSource) ([]*domain.NewsArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", rssUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	return parseRSS(io.LimitReader(resp.Body, maxResponseBytes), source, f.now().UTC())
}

func parseRSS(r io.Reader, source domain.NewsSource, now time.Time) ([]*domain.NewsArticle, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]*domain.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		title := cleanHTML(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		pubDate := now
		if item.PublishedParsed != nil {
			pubDate = item.PublishedParsed.UTC()
		}
		articles = append(articles, &domain.NewsArticle{
			ID:          source.Name + "-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
			Title:       title,
			Description: cleanHTML(item.Description),
			Link:        link,
			PubDate:     pubDate,
			Source:      source.DisplayName,
			ImageURL:    itemImage(item),
			Author:      itemAuthor(item),
		})
	}
	return articles, nil
}

// cleanHTML drops markup and decodes entities, collapsing whitespace
func cleanHTML(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// itemImage checks media:content, then the feed's own item image, then an
// image enclosure, then the first <img> of the description.
func itemImage(item *gofeed.Item) string {
	for _, m := range item.Extensions["media"]["content"] {
		if src := m.Attrs["url"]; src != "" && (m.Attrs["medium"] == "" || m.Attrs["medium"] == "image") {
			return src
		}
	}
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, e := range item.Enclosures {
		if e.URL != "" && strings.HasPrefix(e.Type, "image/") {
			return e.URL
		}
	}
	if !strings.Contains(item.Description, "<img") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Description))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}

// itemAuthor prefers dc:creator over the RSS author field
func itemAuthor(item *gofeed.Item) string {
	if item.DublinCoreExt != nil {
		for _, creator := range item.DublinCoreExt.Creator {
			if name := strings.TrimSpace(creator); name != "" {
				return name
			}
		}
	}
	for _, person := range item.Authors {
		if person == nil {
			continue
		}
		if name := strings.TrimSpace(firstNonEmpty(person.Name, person.Email)); name != "" {
			return name
		}
	}
	return ""
}
