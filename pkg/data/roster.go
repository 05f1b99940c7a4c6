package data

import (
	"github.com/pkg/errors"
)

const (
	// ScoreMin and ScoreMax bound the valid score range.
	ScoreMin = 0
	ScoreMax = 100

	// NoStudent is the sentinel returned by analyses over an empty roster.
	NoStudent = "N/A"
)

// Entry is a single name/score pair in roster order.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Roster is an insertion-ordered mapping of student name to score.
// Setting an existing name keeps the later score and moves the entry
// to the later position, matching the import contract.
type Roster struct {
	entries []Entry
	index   map[string]int
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		index: map[string]int{},
	}
}

// Set adds or replaces a student score. Validation happens here, at the
// adapter boundary: the analyses assume every stored score is in range.
func (r *Roster) Set(name string, score int) error {
	if name == "" {
		return errors.New("student name required")
	}
	if score < ScoreMin || score > ScoreMax {
		return errors.Errorf("score for %s out of range [%d,%d]: %d", name, ScoreMin, ScoreMax, score)
	}

	if i, ok := r.index[name]; ok {
		r.entries = append(r.entries[:i], r.entries[i+1:]...)
		for j := i; j < len(r.entries); j++ {
			r.index[r.entries[j].Name] = j
		}
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Score: score})
	return nil
}

// Get returns the score for a name.
func (r *Roster) Get(name string) (int, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.entries[i].Score, true
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.entries)
}

// Entries returns the roster in insertion order. The returned slice is a
// copy, callers cannot mutate the roster through it.
func (r *Roster) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Scores returns the scores in insertion order.
func (r *Roster) Scores() []int {
	out := make([]int, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Score
	}
	return out
}
