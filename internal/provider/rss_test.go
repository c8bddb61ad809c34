package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthapp/synth/internal/domain"
	"github.com/synthapp/synth/pkg/logger"
)

const rssPayload = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Music News</title>
    <item>
      <title>Big Thief announce new album</title>
      <link>https://news.example.com/big-thief</link>
      <description><![CDATA[<p>The band&#39;s <b>sixth</b> record &amp; a tour.</p>]]></description>
      <pubDate>Tue, 01 Sep 2026 14:30:00 +0000</pubDate>
      <dc:creator>Jane Writer</dc:creator>
      <media:content url="https://img.example.com/media.jpg" medium="image"/>
    </item>
    <item>
      <title>Festival lineup revealed</title>
      <link>https://news.example.com/festival</link>
      <description>Headliners confirmed</description>
      <pubDate>not a date</pubDate>
      <enclosure url="https://img.example.com/enclosure.jpg" type="image/jpeg" length="0"/>
    </item>
    <item>
      <title>Singer shares video</title>
      <link>https://news.example.com/video</link>
      <description><![CDATA[<img src="https://img.example.com/inline.jpg"/> Watch it now]]></description>
      <pubDate>2026-08-30T10:00:00Z</pubDate>
      <enclosure url="https://cdn.example.com/audio.mp3" type="audio/mpeg" length="0"/>
    </item>
    <item>
      <title></title>
      <link>https://news.example.com/untitled</link>
    </item>
  </channel>
</rss>`

var testSource = domain.NewsSource{Name: "pitchfork", URL: "https://pitchfork.com/rss/news/", DisplayName: "Pitchfork"}

func TestParseRSS(t *testing.T) {
	now := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	articles, err := parseRSS(strings.NewReader(rssPayload), testSource, now)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	first := articles[0]
	assert.Equal(t, "Big Thief announce new album", first.Title)
	assert.Equal(t, "The band's sixth record & a tour.", first.Description)
	assert.Equal(t, "https://news.example.com/big-thief", first.Link)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), first.PubDate)
	assert.Equal(t, "Pitchfork", first.Source)
	assert.Equal(t, "Jane Writer", first.Author)
	assert.Equal(t, "https://img.example.com/media.jpg", first.ImageURL)
	assert.True(t, strings.HasPrefix(first.ID, "pitchfork-"))

	second := articles[1]
	assert.Equal(t, now, second.PubDate)
	assert.Equal(t, "https://img.example.com/enclosure.jpg", second.ImageURL)

	third := articles[2]
	assert.Equal(t, "https://img.example.com/inline.jpg", third.ImageURL)
	assert.Equal(t, "Watch it now", third.Description)
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), third.PubDate)
}

func TestParseRSS_StableIDs(t *testing.T) {
	now := time.Now()
	a, err := parseRSS(strings.NewReader(rssPayload), testSource, now)
	require.NoError(t, err)
	b, err := parseRSS(strings.NewReader(rssPayload), testSource, now)
	require.NoError(t, err)
	assert.Equal(t, a[0].ID, b[0].ID)
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestParseRSS_AtomFeed(t *testing.T) {
	const atom = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Tour Wire</title>
  <entry>
    <title>Tour dates added</title>
    <link href="https://wire.example.com/tour"/>
    <id>urn:uuid:1</id>
    <published>2026-09-10T08:00:00Z</published>
    <summary>Ten new &lt;b&gt;cities&lt;/b&gt;</summary>
    <author><name>Desk Editor</name></author>
  </entry>
</feed>`

	articles, err := parseRSS(strings.NewReader(atom), testSource, time.Now())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Tour dates added", articles[0].Title)
	assert.Equal(t, "https://wire.example.com/tour", articles[0].Link)
	assert.Equal(t, "Ten new cities", articles[0].Description)
	assert.Equal(t, "Desk Editor", articles[0].Author)
	assert.Equal(t, time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC), articles[0].PubDate)
}

func TestParseRSS_Invalid(t *testing.T) {
	_, err := parseRSS(strings.NewReader("this is not xml"), testSource, time.Now())
	assert.Error(t, err)
}

func TestCleanHTML(t *testing.T) {
	assert.Equal(t, "", cleanHTML("   "))
	assert.Equal(t, "Tom & Jerry", cleanHTML("Tom &amp; Jerry"))
	assert.Equal(t, "a b c", cleanHTML("<div>a\n\n<span>b</span>   c</div>"))
}

func TestRSSFetcher_FetchSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, rssUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssPayload))
	}))
	defer server.Close()

	fetcher := NewRSSFetcher(time.Second, logger.NewMockLogger(t))
	source := testSource
	source.URL = server.URL
	articles, err := fetcher.FetchSource(context.Background(), source)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestRSSFetcher_FetchSourceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewRSSFetcher(time.Second, logger.NewMockLogger(t))
	source := testSource
	source.URL = server.URL
	_, err := fetcher.FetchSource(context.Background(), source)
	assert.ErrorContains(t, err, "status 503")
}
