package data

// Grade is a letter grade derived from a score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"

	// GradeNone is the projection fallback for a student missing
	// from a grade assignment.
	GradeNone Grade = "N/A"
)

// Grades lists the letter grades in display order.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// Distribution counts students per letter grade. All five grades are
// always present as keys, zero or not.
type Distribution map[Grade]int

// AssignGrade maps a score to its letter grade. The caller guarantees
// the score is in range, band edges are inclusive at the bottom.
func AssignGrade(score int) Grade {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// GradeRoster assigns a grade to every student in a single pass,
// accumulating the distribution as it goes.
func GradeRoster(r *Roster) (map[string]Grade, Distribution) {
	dist := Distribution{}
	for _, g := range Grades {
		dist[g] = 0
	}

	grades := map[string]Grade{}
	if r == nil {
		return grades, dist
	}

	for _, e := range r.entries {
		g := AssignGrade(e.Score)
		grades[e.Name] = g
		dist[g]++
	}
	return grades, dist
}
