package data

import (
	"sort"
)

// Summary holds the descriptive statistics for a roster.
type Summary struct {
	Students int     `json:"students"`
	Average  float64 `json:"average"`
	Median   float64 `json:"median"`
	Top      Entry   `json:"top"`
	Bottom   Entry   `json:"bottom"`
}

// Average returns the mean score, 0.0 for an empty roster.
func Average(r *Roster) float64 {
	if r == nil || r.Len() == 0 {
		return 0.0
	}
	sum := 0
	for _, e := range r.entries {
		sum += e.Score
	}
	return float64(sum) / float64(r.Len())
}

// Median returns the median score, 0.0 for an empty roster. For an even
// count it is the mean of the two middle values.
func Median(r *Roster) float64 {
	if r == nil || r.Len() == 0 {
		return 0.0
	}

	sorted := r.Scores()
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// MaxScore returns the first student in roster order holding the highest
// score. Returns the NoStudent sentinel for an empty roster.
func MaxScore(r *Roster) Entry {
	return scanExtreme(r, func(candidate, best int) bool {
		return candidate > best
	})
}

// MinScore returns the first student in roster order holding the lowest
// score. Returns the NoStudent sentinel for an empty roster.
func MinScore(r *Roster) Entry {
	return scanExtreme(r, func(candidate, best int) bool {
		return candidate < best
	})
}

// scanExtreme walks entries in insertion order so ties resolve to the
// first occurrence regardless of score distribution.
func scanExtreme(r *Roster, better func(candidate, best int) bool) Entry {
	if r == nil || r.Len() == 0 {
		return Entry{Name: NoStudent, Score: 0}
	}

	best := r.entries[0]
	for _, e := range r.entries[1:] {
		if better(e.Score, best.Score) {
			best = e
		}
	}
	return best
}

// Summarize bundles the descriptive statistics for a roster.
func Summarize(r *Roster) *Summary {
	s := &Summary{
		Average: Average(r),
		Median:  Median(r),
		Top:     MaxScore(r),
		Bottom:  MinScore(r),
	}
	if r != nil {
		s.Students = r.Len()
	}
	return s
}
