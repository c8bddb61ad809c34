package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AdultAge is the age from which events are shown unfiltered
const AdultAge = 18

var explicitTags = []string{
	"18+", "21+", "adult", "explicit", "mature", "nsfw", "adults only", "age restricted",
}

var explicitGenres = []string{
	"explicit hip-hop", "explicit rap", "adult contemporary",
}

var ageRestrictionPattern = regexp.MustCompile(`(\d+)\+`)

// AgeOn is the age in whole years of someone born on birthday
func AgeOn(birthday time.Time, now time.Time) int {
	age := now.Year() - birthday.Year()
	if now.Month() < birthday.Month() || (now.Month() == birthday.Month() && now.Day() < birthday.Day()) {
		age--
	}
	return age
}

// IsExplicit reports whether the event is tagged or titled as adult content
func (e *Event) IsExplicit() bool {
	for _, g := range e.Genres {
		g = strings.ToLower(g)
		for _, explicit := range explicitGenres {
			if strings.Contains(g, explicit) {
				return true
			}
		}
	}
	for _, text := range []string{e.Title, e.Description} {
		text = strings.ToLower(text)
		for _, tag := range explicitTags {
			if strings.Contains(text, tag) {
				return true
			}
		}
	}
	return false
}

// MinimumAge is the adult age limit named in the title or description ("19+"),
// or zero when none is named
func (e *Event) MinimumAge() int {
	m := ageRestrictionPattern.FindStringSubmatch(strings.ToLower(e.Title + " " + e.Description))
	if m == nil {
		return 0
	}
	age, err := strconv.Atoi(m[1])
	if err != nil || age < AdultAge {
		return 0
	}
	return age
}

// FilterForMinors drops explicit and age-restricted events for viewers
// younger than AdultAge. Adults get events back unchanged.
func FilterForMinors(events []*Event, age int) []*Event {
	if age >= AdultAge {
		return events
	}
	kept := make([]*Event, 0, len(events))
	for _, e := range events {
		if e.IsExplicit() {
			continue
		}
		if limit := e.MinimumAge(); limit > 0 && age < limit {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
