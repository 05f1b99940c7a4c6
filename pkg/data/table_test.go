package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRows(t *testing.T) {
	r := makeRoster(t, Entry{"Alice", 78}, Entry{"Bob", 92})
	grades, _ := GradeRoster(r)

	rows := ProjectRows(r, grades)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Name: "Alice", Score: 78, Grade: GradeC}, rows[0])
	assert.Equal(t, Row{Name: "Bob", Score: 92, Grade: GradeA}, rows[1])
}

func TestProjectRows_MissingGradeFallsBack(t *testing.T) {
	r := makeRoster(t, Entry{"Alice", 78})

	rows := ProjectRows(r, map[string]Grade{})
	require.Len(t, rows, 1)
	assert.Equal(t, GradeNone, rows[0].Grade)
}

func TestProjectRows_Empty(t *testing.T) {
	rows := ProjectRows(NewRoster(), nil)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
