package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupProgress(t *testing.T) {
	entries := []*PassportEntry{
		{ID: "1", Type: PassportCity},
		{ID: "2", Type: PassportVenue},
		{ID: "3", Type: PassportArtist},
		{ID: "4", Type: PassportArtist},
		{ID: "5", Type: PassportScene},
		{ID: "6", Type: PassportFestival},
	}

	progress := GroupProgress(entries)

	assert.Len(t, progress.Cities, 1)
	assert.Len(t, progress.Venues, 1)
	assert.Len(t, progress.Artists, 2)
	assert.Len(t, progress.Scenes, 1)
	assert.Equal(t, 6, progress.TotalCount)

	empty := GroupProgress(nil)
	assert.NotNil(t, empty.Cities)
	assert.Equal(t, 0, empty.TotalCount)
}

func TestTimelineEventName(t *testing.T) {
	assert.Equal(t, "Phish @ MSG", *TimelineEventName("Phish", "MSG"))
	assert.Equal(t, "Phish", *TimelineEventName("Phish", ""))
	assert.Equal(t, "MSG", *TimelineEventName("", "MSG"))
	assert.Nil(t, TimelineEventName("", ""))
}

func TestBuildTimeline(t *testing.T) {
	reviewed := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	eventDate := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	milestoneAt := time.Date(2026, 1, 12, 8, 0, 0, 0, time.UTC)
	significance := "First show"
	customName := "NYE run"

	records := []*TimelineRecord{
		{
			ReviewID:        "r1",
			Rating:          4.5,
			EventID:         "e1",
			EventDate:       &eventDate,
			ArtistName:      "Phish",
			VenueName:       "MSG",
			ReviewCreatedAt: reviewed,
		},
		{
			ReviewID:        "r2",
			Rating:          3,
			ArtistName:      "Goose",
			ReviewCreatedAt: reviewed,
			Milestone: &TimelineMilestone{
				ID:           "t2",
				IsPinned:     true,
				Significance: &significance,
				EventName:    &customName,
				CreatedAt:    milestoneAt,
			},
		},
	}

	timeline := BuildTimeline(records)
	require.Len(t, timeline, 2)

	auto := timeline[0]
	assert.Equal(t, "review-r1", auto.ID)
	assert.True(t, auto.IsAutoSelected)
	assert.False(t, auto.IsPinned)
	assert.Equal(t, "Phish @ MSG", *auto.EventName)
	assert.Equal(t, eventDate, auto.Review.EventDate)
	assert.Equal(t, reviewed, auto.CreatedAt)

	pinned := timeline[1]
	assert.Equal(t, "t2", pinned.ID)
	assert.False(t, pinned.IsAutoSelected)
	assert.True(t, pinned.IsPinned)
	assert.Equal(t, "NYE run", *pinned.EventName)
	assert.Equal(t, "First show", *pinned.Significance)
	assert.Equal(t, milestoneAt, pinned.CreatedAt)
	// no event date falls back to the review date
	assert.Equal(t, reviewed, pinned.Review.EventDate)
}

func TestCalculateTasteMap(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	signals := []*TasteSignal{
		{Kind: TasteSignalReview, ArtistName: "Phish", VenueID: "v1", Genres: []string{"Rock", "Jam"}, Rating: 5, WasThere: true},
		{Kind: TasteSignalReview, ArtistName: "Phish", VenueID: "v2", Genres: []string{"Rock"}, Rating: 4},
		{Kind: TasteSignalInterest, ArtistName: "Goose", VenueID: "v1", Genres: []string{"Jam"}},
		{Kind: TasteSignalReview, ArtistName: "Phish", VenueID: "v3", Genres: []string{"Rock"}, Rating: 3, WasThere: true},
	}

	tm := CalculateTasteMap("user-1", signals, nil, now)

	assert.Equal(t, "user-1", tm.UserID)
	assert.Equal(t, 4, tm.EventCount)
	assert.Equal(t, now, tm.CalculatedAt)
	require.NotNil(t, tm.FanType)
	assert.Equal(t, FanTypeJamChaser, *tm.FanType)

	require.Len(t, tm.Genres, 2)
	assert.Equal(t, "Rock", tm.Genres[0].Name)
	assert.InDelta(t, 1.0, tm.Genres[0].Weight, 0.0001)
	assert.Equal(t, "Jam", tm.Genres[1].Name)
	assert.InDelta(t, 0.515, tm.Genres[1].Weight, 0.0001)

	require.Len(t, tm.Artists, 2)
	assert.Equal(t, "Phish", tm.Artists[0].Name)
	assert.InDelta(t, 0.074, tm.Artists[1].Weight, 0.0001)
}

func TestCalculateTasteMap_FanTypes(t *testing.T) {
	now := time.Now()
	fanType := func(signals []*TasteSignal, entries []*PassportEntry) *FanType {
		return CalculateTasteMap("u", signals, entries, now).FanType
	}

	t.Run("genre explorer", func(t *testing.T) {
		var signals []*TasteSignal
		for _, g := range []string{"rock", "jazz", "funk", "soul", "folk", "metal", "punk", "house"} {
			signals = append(signals, &TasteSignal{Kind: TasteSignalInterest, Genres: []string{g}})
		}
		assert.Equal(t, FanTypeGenreExplorer.Ptr(), fanType(signals, nil))
	})

	t.Run("venue purist", func(t *testing.T) {
		signals := []*TasteSignal{
			{Kind: TasteSignalInterest, ArtistName: "A", VenueName: "Red Rocks"},
			{Kind: TasteSignalInterest, ArtistName: "B", VenueName: "red rocks"},
			{Kind: TasteSignalInterest, ArtistName: "C", VenueName: "Red Rocks "},
			{Kind: TasteSignalInterest, ArtistName: "D", VenueName: "Fillmore"},
		}
		assert.Equal(t, FanTypeVenuePurist.Ptr(), fanType(signals, nil))
	})

	t.Run("road tripper", func(t *testing.T) {
		var signals []*TasteSignal
		for _, c := range []string{"Austin", "Denver", "Chicago", "Nashville", "Portland"} {
			signals = append(signals, &TasteSignal{Kind: TasteSignalInterest, ArtistName: c + " band", VenueID: c, VenueCity: c, VenueState: "XX"})
		}
		assert.Equal(t, FanTypeRoadTripper.Ptr(), fanType(signals, nil))
	})

	t.Run("festival fanatic wins over loyalty", func(t *testing.T) {
		signals := []*TasteSignal{
			{Kind: TasteSignalInterest, ArtistName: "Phish"},
			{Kind: TasteSignalInterest, ArtistName: "Phish"},
			{Kind: TasteSignalInterest, ArtistName: "Phish"},
		}
		entries := []*PassportEntry{
			{Type: PassportFestival}, {Type: PassportFestival}, {Type: PassportFestival}, {Type: PassportCity},
		}
		assert.Equal(t, FanTypeFestivalFanatic.Ptr(), fanType(signals, entries))
	})

	t.Run("scene builder", func(t *testing.T) {
		entries := []*PassportEntry{{Type: PassportScene}, {Type: PassportScene}, {Type: PassportScene}}
		assert.Equal(t, FanTypeSceneBuilder.Ptr(), fanType(nil, entries))
	})

	t.Run("too few events has no type", func(t *testing.T) {
		signals := []*TasteSignal{{Kind: TasteSignalReview, ArtistName: "A", Rating: 5}}
		assert.Nil(t, fanType(signals, nil))
	})

	t.Run("spread out has no type", func(t *testing.T) {
		var signals []*TasteSignal
		for _, a := range []string{"A", "B", "C", "D", "E"} {
			signals = append(signals, &TasteSignal{Kind: TasteSignalInterest, ArtistName: a, VenueID: a})
		}
		assert.Nil(t, fanType(signals, nil))
	})
}

func TestCalculateTasteMap_TopTen(t *testing.T) {
	var signals []*TasteSignal
	for i := 0; i < 12; i++ {
		signals = append(signals, &TasteSignal{
			Kind:       TasteSignalReview,
			ArtistName: string(rune('A' + i)),
			Rating:     float64(i%5) + 1,
		})
	}

	tm := CalculateTasteMap("u", signals, nil, time.Now())

	assert.Len(t, tm.Artists, TasteMapTopN)
	assert.Empty(t, tm.Genres)
	assert.InDelta(t, 1.0, tm.Artists[0].Weight, 0.0001)
}

func TestWeightedTags_ScanValue(t *testing.T) {
	tags := WeightedTags{{Name: "Rock", Weight: 1}, {Name: "Jam", Weight: 0.5}}
	v, err := tags.Value()
	require.NoError(t, err)

	var decoded WeightedTags
	require.NoError(t, decoded.Scan(v))
	if diff := cmp.Diff(tags, decoded); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestUnlockEntryRequest_Validate(t *testing.T) {
	req := &UnlockEntryRequest{Type: PassportCity, EntityName: "Austin, TX", EntityID: strPtr("austin_tx")}
	require.NoError(t, req.Validate())
	assert.Equal(t, RarityCommon, req.Rarity)

	missing := &UnlockEntryRequest{Type: PassportVenue, EntityName: "Stubb's", EntityID: strPtr(" ")}
	assert.Error(t, missing.Validate())

	badType := &UnlockEntryRequest{Type: "planet", EntityName: "Mars", EntityID: strPtr("mars")}
	assert.Error(t, badType.Validate())

	badRarity := &UnlockEntryRequest{Type: PassportArtist, EntityName: "Phish", EntityUUID: strPtr("a1"), Rarity: "mythic"}
	assert.Error(t, badRarity.Validate())
}

func TestMilestoneRequest_Validate(t *testing.T) {
	assert.Error(t, (&MilestoneRequest{Significance: "x"}).Validate())
	assert.Error(t, (&MilestoneRequest{ReviewID: "r1", Significance: "  "}).Validate())

	req := &MilestoneRequest{ReviewID: "r1", Significance: " First show "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "First show", req.Significance)
}
