package data

import (
	"golang.org/x/sync/errgroup"
)

// Report is the full analysis of a roster.
type Report struct {
	Summary      *Summary         `json:"summary"`
	Grades       map[string]Grade `json:"grades"`
	Distribution Distribution     `json:"distribution"`
	PassFail     *Partition       `json:"pass_fail"`
	Rows         []Row            `json:"rows"`
}

// Analyze runs every analysis over the roster. The sections are
// independent pure functions, so they fan out concurrently; the result
// is identical to running them sequentially. Tie-breaks are resolved
// against roster insertion order inside each pass.
func Analyze(r *Roster, threshold int) *Report {
	rep := &Report{}

	var g errgroup.Group

	g.Go(func() error {
		rep.Summary = Summarize(r)
		return nil
	})

	g.Go(func() error {
		grades, dist := GradeRoster(r)
		rep.Grades = grades
		rep.Distribution = dist
		rep.Rows = ProjectRows(r, grades)
		return nil
	})

	g.Go(func() error {
		rep.PassFail = PartitionPassFail(r, threshold)
		return nil
	})

	// sections never return errors, Wait only synchronizes
	_ = g.Wait()

	return rep
}
