package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoster(t *testing.T, entries ...Entry) *Roster {
	t.Helper()
	r := NewRoster()
	for _, e := range entries {
		require.NoError(t, r.Set(e.Name, e.Score))
	}
	return r
}

func classRoster(t *testing.T) *Roster {
	t.Helper()
	return makeRoster(t,
		Entry{"Alice", 78},
		Entry{"Bob", 92},
		Entry{"Charlie", 65},
		Entry{"Diana", 83},
		Entry{"Evan", 55},
		Entry{"Fiona", 95},
		Entry{"George", 39},
		Entry{"Helen", 72},
	)
}

func TestAverage(t *testing.T) {
	r := classRoster(t)
	assert.InDelta(t, 72.375, Average(r), 0.0001)

	sum := 0
	for _, s := range r.Scores() {
		sum += s
	}
	assert.InDelta(t, float64(sum), Average(r)*float64(r.Len()), 0.0001)
}

func TestAverage_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Average(NewRoster()))
	assert.Equal(t, 0.0, Average(nil))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"even count", []int{60, 70, 80, 90}, 75.0},
		{"odd count", []int{60, 70, 80}, 70.0},
		{"single", []int{42}, 42.0},
		{"unsorted input", []int{90, 60, 80, 70}, 75.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRoster()
			for i, s := range tt.scores {
				require.NoError(t, r.Set(string(rune('a'+i)), s))
			}
			assert.InDelta(t, tt.want, Median(r), 0.0001)
		})
	}
}

func TestMedian_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Median(NewRoster()))
}

func TestMaxScore_FirstOccurrenceWins(t *testing.T) {
	r := makeRoster(t,
		Entry{"A", 90},
		Entry{"B", 90},
		Entry{"C", 40},
	)

	got := MaxScore(r)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, 90, got.Score)
}

func TestMinScore_FirstOccurrenceWins(t *testing.T) {
	r := makeRoster(t,
		Entry{"A", 40},
		Entry{"B", 90},
		Entry{"C", 40},
	)

	got := MinScore(r)
	assert.Equal(t, "A", got.Name)
	assert.Equal(t, 40, got.Score)
}

func TestExtremes_Empty(t *testing.T) {
	assert.Equal(t, Entry{Name: NoStudent, Score: 0}, MaxScore(NewRoster()))
	assert.Equal(t, Entry{Name: NoStudent, Score: 0}, MinScore(NewRoster()))
}

func TestSummarize(t *testing.T) {
	s := Summarize(classRoster(t))
	require.NotNil(t, s)

	assert.Equal(t, 8, s.Students)
	assert.InDelta(t, 72.375, s.Average, 0.0001)
	// sorted scores 39,55,65,72,78,83,92,95: mean of the middle pair 72,78
	assert.InDelta(t, 75.0, s.Median, 0.0001)
	assert.Equal(t, Entry{Name: "Fiona", Score: 95}, s.Top)
	assert.Equal(t, Entry{Name: "George", Score: 39}, s.Bottom)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewRoster())
	require.NotNil(t, s)

	assert.Equal(t, 0, s.Students)
	assert.Equal(t, 0.0, s.Average)
	assert.Equal(t, 0.0, s.Median)
	assert.Equal(t, NoStudent, s.Top.Name)
	assert.Equal(t, NoStudent, s.Bottom.Name)
}
