package lifebalance

import "fmt"

// DefaultScore is the midpoint every area starts at.
const DefaultScore = 50

// Scores holds one bounded satisfaction score per life area. All four
// areas are always present.
type Scores struct {
	values map[Area]int
}

// NewScores returns a score set with every area at the default midpoint.
func NewScores() Scores {
	s := Scores{values: make(map[Area]int, len(areaOrder))}
	for _, a := range areaOrder {
		s.values[a] = DefaultScore
	}
	return s
}

// ScoresFromMap builds a score set from persisted values. Missing areas
// fall back to the default; invalid areas or out-of-range values are
// rejected.
func ScoresFromMap(values map[Area]int) (Scores, error) {
	s := NewScores()
	for a, v := range values {
		if err := s.Set(a, v); err != nil {
			return Scores{}, err
		}
	}
	return s, nil
}

func (s Scores) Get(area Area) int {
	return s.values[area]
}

// Set rejects out-of-range values and unknown areas; the prior value is
// left unchanged on failure.
func (s Scores) Set(area Area, value int) error {
	if !area.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownArea, string(area))
	}
	if value < 0 || value > 100 {
		return fmt.Errorf("%w: %s=%d", ErrScoreOutOfRange, area, value)
	}
	s.values[area] = value
	return nil
}

// Lowest returns the lowest-scoring area. Ties resolve to the earlier
// area in assessment order.
func (s Scores) Lowest() (Area, int) {
	lowArea := areaOrder[0]
	low := s.values[lowArea]
	for _, a := range areaOrder[1:] {
		if s.values[a] < low {
			lowArea = a
			low = s.values[a]
		}
	}
	return lowArea, low
}

// Map returns a copy of the scores keyed by area.
func (s Scores) Map() map[Area]int {
	out := make(map[Area]int, len(s.values))
	for a, v := range s.values {
		out[a] = v
	}
	return out
}
