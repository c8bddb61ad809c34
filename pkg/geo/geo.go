// Package geo holds the distance and area helpers used by event search, city
// lookups and the Ticketmaster radius filter.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

type Unit string

const (
	Miles      Unit = "miles"
	Kilometers Unit = "km"

	earthRadiusMiles = 3959.0
	earthRadiusKm    = 6371.0
)

// DefaultCenter is the geographic center of the contiguous United States
var DefaultCenter = Point{Lat: 39.8283, Lng: -98.5795}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// ParseUnit maps the unit spellings accepted by the providers. Anything
// unrecognised is miles.
func ParseUnit(s string) Unit {
	switch s {
	case "km", "KM", "kilometers", "kilometres":
		return Kilometers
	}
	return Miles
}

func radius(u Unit) float64 {
	if u == Kilometers {
		return earthRadiusKm
	}
	return earthRadiusMiles
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// Distance is the haversine distance between two points rounded to 2 decimals
func Distance(a, b Point, u Unit) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(radius(u)*c*100) / 100
}

// Within reports whether p lies inside the radius around center
func Within(center, p Point, r float64, u Unit) bool {
	return Distance(center, p, u) <= r
}

// Center is the arithmetic mean of the points, DefaultCenter when empty
func Center(points []Point) Point {
	switch len(points) {
	case 0:
		return DefaultCenter
	case 1:
		return points[0]
	}
	var lat, lng float64
	for _, p := range points {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(points))
	return Point{Lat: lat / n, Lng: lng / n}
}

// BoundsOf returns the padded bounding box of the points
func BoundsOf(points []Point, padding float64) Bounds {
	if len(points) == 0 {
		return Bounds{North: 40, South: 39, East: -97, West: -99}
	}
	b := Bounds{North: points[0].Lat, South: points[0].Lat, East: points[0].Lng, West: points[0].Lng}
	for _, p := range points[1:] {
		b.North = math.Max(b.North, p.Lat)
		b.South = math.Min(b.South, p.Lat)
		b.East = math.Max(b.East, p.Lng)
		b.West = math.Min(b.West, p.Lng)
	}
	b.North += padding
	b.South -= padding
	b.East += padding
	b.West -= padding
	return b
}

// BoundingBox is a conservative box around center containing every point within
// r. It lets SQL prefilter rows before the exact haversine check. East and West
// may fall outside [-180, 180]; use LongitudeRanges to query them.
func BoundingBox(center Point, r float64, u Unit) Bounds {
	latDelta := r / radius(u) * 180 / math.Pi
	north := math.Min(90, center.Lat+latDelta)
	south := math.Max(-90, center.Lat-latDelta)

	// a box reaching a pole covers every longitude
	lngDelta := 180.0
	cosLat := math.Cos(toRadians(center.Lat))
	if north < 90 && south > -90 && cosLat > 1e-9 {
		lngDelta = math.Min(180, latDelta/cosLat)
	}
	return Bounds{
		North: north,
		South: south,
		East:  center.Lng + lngDelta,
		West:  center.Lng - lngDelta,
	}
}

// LngRange is an inclusive longitude interval with West <= East
type LngRange struct {
	West float64
	East float64
}

// LongitudeRanges splits the box's longitudes at the antimeridian into one or
// two ranges inside [-180, 180].
func (b Bounds) LongitudeRanges() []LngRange {
	if b.East-b.West >= 360 {
		return []LngRange{{West: -180, East: 180}}
	}
	west, east := b.West, b.East
	switch {
	case west < -180:
		return []LngRange{{West: west + 360, East: 180}, {West: -180, East: east}}
	case east > 180:
		return []LngRange{{West: west, East: 180}, {West: -180, East: east - 360}}
	default:
		return []LngRange{{West: west, East: east}}
	}
}

// ZoomLevel picks a map zoom level (4-16) that fits the bounds
func (b Bounds) ZoomLevel() int {
	maxDiff := math.Max(b.North-b.South, b.East-b.West)
	steps := []struct {
		over float64
		zoom int
	}{
		{50, 4}, {20, 5}, {10, 6}, {5, 7}, {2, 8}, {1, 9},
		{0.5, 10}, {0.2, 11}, {0.1, 12}, {0.05, 13}, {0.02, 14}, {0.01, 15},
	}
	for _, s := range steps {
		if maxDiff > s.over {
			return s.zoom
		}
	}
	return 16
}

// Geohash encodes the point with the given number of characters
func Geohash(p Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, precision)
}
