package data

// Row is one line of the results table.
type Row struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Grade Grade  `json:"grade"`
}

// ProjectRows joins the roster with a grade assignment, one row per
// student in roster order. A student missing from the assignment gets
// GradeNone, the contract holds even for mismatched inputs.
func ProjectRows(r *Roster, grades map[string]Grade) []Row {
	if r == nil {
		return []Row{}
	}

	rows := make([]Row, 0, r.Len())
	for _, e := range r.entries {
		g, ok := grades[e.Name]
		if !ok {
			g = GradeNone
		}
		rows = append(rows, Row{Name: e.Name, Score: e.Score, Grade: g})
	}
	return rows
}
