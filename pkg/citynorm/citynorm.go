// Package citynorm normalizes free-form city names coming from users and event
// providers so "Washington, D.C.", "washington dc" and "DC" compare equal.
package citynorm

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// expansions applies to whole tokens after dots are removed
var expansions = map[string]string{
	"dc":    "district of columbia",
	"ny":    "new york",
	"nyc":   "new york city",
	"la":    "los angeles",
	"sf":    "san francisco",
	"chi":   "chicago",
	"mia":   "miami",
	"sea":   "seattle",
	"phx":   "phoenix",
	"den":   "denver",
	"vegas": "las vegas",
	"lv":    "las vegas",
}

var displayNames = map[string]string{
	"sea":        "Seattle",
	"den":        "Denver",
	"nyc":        "New York",
	"ny":         "New York",
	"la":         "Los Angeles",
	"sf":         "San Francisco",
	"chi":        "Chicago",
	"mia":        "Miami",
	"phx":        "Phoenix",
	"lv":         "Las Vegas",
	"vegas":      "Las Vegas",
	"dc":         "Washington DC",
	"d.c.":       "Washington DC",
	"d c":        "Washington DC",
	"washington": "Washington DC",
}

var cityStateSuffix = regexp.MustCompile(`^(.+?),\s*([A-Z]{2})$`)

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize lowercases, folds accents, expands common abbreviations and strips
// punctuation. The result is only meant for comparison.
func Normalize(city string) string {
	s := foldAccents(strings.ToLower(strings.TrimSpace(city)))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			return r
		}
		return -1
	}, s)

	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "d" && i+1 < len(tokens) && tokens[i+1] == "c" {
			out = append(out, expansions["dc"])
			i++
			continue
		}
		if exp, ok := expansions[tok]; ok {
			out = append(out, exp)
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// AreEqual reports whether two names normalize to the same city
func AreEqual(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

func mentionsDC(raw string) bool {
	l := strings.ToLower(raw)
	return strings.Contains(l, "dc") || strings.Contains(l, "d.c") || strings.Contains(l, "d c")
}

// CanonicalName picks the display variant of a group of names for one city.
// DC, New York and Los Angeles variants have fixed preferences; otherwise the
// shortest name wins, ties broken alphabetically.
func CanonicalName(variations []string) string {
	if len(variations) == 0 {
		return ""
	}
	normalized := make([]string, len(variations))
	for i, v := range variations {
		normalized[i] = Normalize(v)
	}
	anyNormalized := func(pred func(string) bool) bool {
		for _, n := range normalized {
			if pred(n) {
				return true
			}
		}
		return false
	}
	firstRaw := func(pred func(string) bool) (string, bool) {
		for _, v := range variations {
			if pred(strings.ToLower(v)) {
				return v, true
			}
		}
		return "", false
	}

	if anyNormalized(func(n string) bool {
		return strings.Contains(n, "washington") && strings.Contains(n, "district of columbia")
	}) {
		if v, ok := firstRaw(func(l string) bool { return strings.Contains(l, "washington") && mentionsDC(l) }); ok {
			return v
		}
	}
	if anyNormalized(func(n string) bool { return strings.Contains(n, "new york") }) {
		if v, ok := firstRaw(func(l string) bool { return strings.Contains(l, "nyc") }); ok {
			return v
		}
		if v, ok := firstRaw(func(l string) bool { return strings.Contains(l, "new york") }); ok {
			return v
		}
	}
	if anyNormalized(func(n string) bool { return strings.Contains(n, "los angeles") }) {
		if v, ok := firstRaw(func(l string) bool { return strings.Contains(l, "los angeles") }); ok {
			return v
		}
	}

	sorted := append([]string(nil), variations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted[0]
}

// Group is the set of raw names sharing one normalized form
type Group struct {
	Normalized string
	Variations []string
}

// GroupVariations groups names by normalized form, in order of first appearance.
// Names that normalize to the empty string are dropped.
func GroupVariations(cities []string) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, c := range cities {
		n := Normalize(c)
		if n == "" {
			continue
		}
		i, ok := index[n]
		if !ok {
			i = len(groups)
			index[n] = i
			groups = append(groups, Group{Normalized: n})
		}
		groups[i].Variations = append(groups[i].Variations, c)
	}
	return groups
}

// FindSimilar returns the names whose normalized form contains the query, or is
// contained by it
func FindSimilar(query string, cities []string) []string {
	q := Normalize(query)
	var out []string
	for _, c := range cities {
		n := Normalize(c)
		if strings.Contains(n, q) || strings.Contains(q, n) {
			out = append(out, c)
		}
	}
	return out
}

// Deduplicate collapses variations to one canonical name per city. A plain
// "Washington" is dropped when a Washington DC entry exists.
func Deduplicate(cities []string) []string {
	groups := GroupVariations(cities)
	result := make([]string, 0, len(groups))
	for _, g := range groups {
		result = append(result, CanonicalName(g.Variations))
	}

	isWashington := func(c string) bool { return strings.Contains(Normalize(c), "washington") }
	hasDC := false
	for _, c := range result {
		if isWashington(c) && mentionsDC(c) {
			hasDC = true
			break
		}
	}
	if !hasDC {
		return result
	}

	filtered := result[:0]
	for _, c := range result {
		if isWashington(c) && !mentionsDC(c) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// FormatForDisplay expands abbreviations, drops a trailing ", ST" state code and
// title-cases everything else
func FormatForDisplay(city string) string {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return ""
	}
	if full, ok := displayNames[strings.ToLower(trimmed)]; ok {
		return full
	}
	if m := cityStateSuffix.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return cases.Title(language.English).String(strings.ToLower(trimmed))
}

// FormatCityState renders "City, ST" or just the city when state is empty
func FormatCityState(city, state string) string {
	formatted := FormatForDisplay(city)
	state = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(state)), ".", "")
	if state == "" {
		return formatted
	}
	return formatted + ", " + state
}

// CityID is the passport identifier of a city: lower(city)_lower(state)
func CityID(city, state string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "_" + strings.ToLower(strings.TrimSpace(state))
}
