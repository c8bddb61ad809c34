package citynorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  Washington DC ", "washington district of columbia"},
		{"Washington, D.C.", "washington district of columbia"},
		{"washington d c", "washington district of columbia"},
		{"NYC", "new york city"},
		{"Brooklyn, NY", "brooklyn new york"},
		{"LA", "los angeles"},
		{"S.F.", "san francisco"},
		{"Vegas", "las vegas"},
		{"Montréal", "montreal"},
		{"St. Louis", "st louis"},
		{"Winston-Salem", "winstonsalem"},
		{"Denver   CO", "denver co"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestAreEqual(t *testing.T) {
	assert.True(t, AreEqual("Washington DC", "washington, d.c."))
	assert.True(t, AreEqual("SF", "San Francisco"))
	assert.False(t, AreEqual("Portland", "Portland ME"))
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "", CanonicalName(nil))
	assert.Equal(t, "Washington DC", CanonicalName([]string{"washington district of columbia", "Washington DC"}))
	assert.Equal(t, "NYC", CanonicalName([]string{"New York City", "NYC"}))
	assert.Equal(t, "new york", CanonicalName([]string{"NY", "new york"}))
	assert.Equal(t, "Los Angeles", CanonicalName([]string{"LA", "Los Angeles"}))
	assert.Equal(t, "Austin", CanonicalName([]string{"austin ", "Austin"}))
}

func TestCanonicalName_DoesNotReorderInput(t *testing.T) {
	in := []string{"Boulder ", "Boulder"}
	_ = CanonicalName(in)
	assert.Equal(t, []string{"Boulder ", "Boulder"}, in)
}

func TestGroupVariations(t *testing.T) {
	groups := GroupVariations([]string{"Chicago", "CHI", "Austin", "", "chicago"})
	assert.Equal(t, []Group{
		{Normalized: "chicago", Variations: []string{"Chicago", "CHI", "chicago"}},
		{Normalized: "austin", Variations: []string{"Austin"}},
	}, groups)
}

func TestFindSimilar(t *testing.T) {
	cities := []string{"New York", "New York City", "Newark", "Boston"}
	assert.Equal(t, []string{"New York", "New York City"}, FindSimilar("NY", cities))
	assert.Equal(t, []string{"Boston"}, FindSimilar("bos", cities))
}

func TestDeduplicate(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
	assert.Equal(t,
		[]string{"Washington DC", "Austin"},
		Deduplicate([]string{"Washington", "Washington DC", "washington, d.c.", "Austin", "austin"}),
	)
	assert.Equal(t, []string{"Washington"}, Deduplicate([]string{"Washington"}))
}

func TestFormatForDisplay(t *testing.T) {
	assert.Equal(t, "", FormatForDisplay("  "))
	assert.Equal(t, "Washington DC", FormatForDisplay("dc"))
	assert.Equal(t, "New York", FormatForDisplay("NYC"))
	assert.Equal(t, "Boston", FormatForDisplay("Boston, MA"))
	assert.Equal(t, "Salt Lake City", FormatForDisplay("salt lake CITY"))
}

func TestFormatCityState(t *testing.T) {
	assert.Equal(t, "Austin, TX", FormatCityState("austin", " tx "))
	assert.Equal(t, "Washington DC, DC", FormatCityState("dc", "D.C."))
	assert.Equal(t, "Austin", FormatCityState("austin", ""))
}

func TestCityID(t *testing.T) {
	assert.Equal(t, "austin_tx", CityID("Austin", "TX"))
	assert.Equal(t, "london_", CityID("London", ""))
}
