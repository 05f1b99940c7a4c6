package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/classware/gbctl/pkg/data"
)

const sectionWidth = 50

// renderReport writes the human-readable report: summary, grade
// distribution, pass/fail lists, and the per-student results table.
func renderReport(w io.Writer, rep *data.Report) {
	if rep == nil || rep.Summary == nil || rep.Summary.Students == 0 {
		fmt.Fprintln(w, "No data available for analysis.")
		return
	}

	section(w, "Statistical Analysis Summary")
	fmt.Fprintf(w, "Total Students:  %d\n", rep.Summary.Students)
	fmt.Fprintf(w, "Class Average:   %.2f\n", rep.Summary.Average)
	fmt.Fprintf(w, "Class Median:    %.2f\n", rep.Summary.Median)
	fmt.Fprintf(w, "Highest Score:   %d (%s)\n", rep.Summary.Top.Score, rep.Summary.Top.Name)
	fmt.Fprintf(w, "Lowest Score:    %d (%s)\n", rep.Summary.Bottom.Score, rep.Summary.Bottom.Name)

	section(w, "Grade Distribution")
	for _, g := range data.Grades {
		fmt.Fprintf(w, "Grade %s: %d\n", g, rep.Distribution[g])
	}

	section(w, fmt.Sprintf("Pass/Fail (pass score: %d+)", rep.PassFail.Threshold))
	fmt.Fprintf(w, "Passed (%d): %s\n", len(rep.PassFail.Passed), strings.Join(rep.PassFail.Passed, ", "))
	fmt.Fprintf(w, "Failed (%d): %s\n", len(rep.PassFail.Failed), strings.Join(rep.PassFail.Failed, ", "))

	section(w, "Results")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCORE\tGRADE")
	for _, row := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Name, row.Score, row.Grade)
	}
	tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", sectionWidth))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", sectionWidth))
}
