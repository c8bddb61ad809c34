package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMusicRelated(t *testing.T) {
	assert.True(t, IsMusicRelated("Band announces reunion tour", ""))
	assert.True(t, IsMusicRelated("Untitled", "A new album arrives Friday"))
	// excluded keywords win over music ones
	assert.False(t, IsMusicRelated("Soundtrack for the new movie", ""))
	assert.False(t, IsMusicRelated("Quarterly update", "Nothing to see"))
}

func TestFilterBySource(t *testing.T) {
	articles := []*NewsArticle{
		{ID: "1", Source: "Pitchfork"},
		{ID: "2", Source: "NME"},
		{ID: "3", Source: "Pitchfork"},
	}

	assert.Len(t, FilterBySource(articles, "all"), 3)
	assert.Len(t, FilterBySource(articles, ""), 3)
	assert.Len(t, FilterBySource(articles, "unknown"), 3)

	filtered := FilterBySource(articles, "pitchfork")
	assert.Len(t, filtered, 2)
	assert.Equal(t, "3", filtered[1].ID)

	assert.Empty(t, FilterBySource(articles, "billboard"))
}
