package imdb

// ShowQuery identifies the show to resolve. A zero year leaves that side of
// the release-date range open.
type ShowQuery struct {
	Title     string
	StartYear int
	EndYear   int
}

// SeasonRatings maps a 1-based episode position to its rating. Episodes
// without a published rating are absent from the map, never stored as zero.
type SeasonRatings map[int]float64

// RatingTable holds every harvested rating, keyed by season label. Seasons
// preserves the order the labels appeared on the episode listing page; that
// order is opaque to us (labels are not always numeric — "Unknown" and
// specials tabs exist) and is never re-sorted.
type RatingTable struct {
	Seasons []string
	Ratings map[string]SeasonRatings
}

// NewRatingTable returns an empty table.
func NewRatingTable() *RatingTable {
	return &RatingTable{
		Ratings: make(map[string]SeasonRatings),
	}
}

// AddSeason registers a season label in discovery order with an empty
// ratings map.
func (t *RatingTable) AddSeason(label string) {
	if _, ok := t.Ratings[label]; ok {
		return
	}
	t.Seasons = append(t.Seasons, label)
	t.Ratings[label] = make(SeasonRatings)
}

// Add records a rating for an episode position within a season.
func (t *RatingTable) Add(label string, position int, rating float64) {
	if _, ok := t.Ratings[label]; !ok {
		t.AddSeason(label)
	}
	t.Ratings[label][position] = rating
}

// Empty reports whether the table holds no seasons at all.
func (t *RatingTable) Empty() bool {
	return t == nil || len(t.Seasons) == 0
}

// MaxEpisodes returns the largest episode count across all seasons.
func (t *RatingTable) MaxEpisodes() int {
	max := 0
	for _, ratings := range t.Ratings {
		for position := range ratings {
			if position > max {
				max = position
			}
		}
	}
	return max
}
