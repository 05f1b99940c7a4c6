package cli

import (
	"os"
	"time"

	"github.com/classware/gbctl/pkg/data"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v2"
)

var (
	fileFlag = &urfave.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the gradebook CSV file (first row is a header: name,score)",
	}

	analyzeCmd = &urfave.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Import a gradebook CSV and print the full analysis",
		UsageText: `gbctl analyze --file grades.csv                  # report as JSON
   gbctl --format table analyze --file grades.csv  # human-readable report
   gbctl analyze --file grades.csv --threshold 50  # custom pass threshold`,
		Action: cmdAnalyze,
		Flags: []urfave.Flag{
			fileFlag,
			thresholdFlag,
		},
	}
)

// AnalyzeResult is the envelope written for analyze and enter commands.
type AnalyzeResult struct {
	Import   *data.ImportResult `json:"import,omitempty"`
	Duration string             `json:"duration,omitempty"`
	Report   *data.Report       `json:"report"`
}

func cmdAnalyze(c *urfave.Context) error {
	file := c.String(fileFlag.Name)
	if file == "" {
		return urfave.ShowSubcommandHelp(c)
	}

	start := time.Now()

	roster, res, err := data.ImportCSV(file)
	if err != nil {
		return errors.Wrap(err, "failed to import gradebook")
	}

	report := data.Analyze(roster, getThreshold(c))

	if outputFormat == formatTable {
		renderReport(os.Stdout, report)
		return nil
	}

	out := &AnalyzeResult{
		Import:   res,
		Duration: time.Since(start).String(),
		Report:   report,
	}
	if err := encode(out); err != nil {
		return errors.Wrapf(err, "error encoding result: %+v", out)
	}
	return nil
}
