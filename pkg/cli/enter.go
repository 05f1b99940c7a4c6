package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/classware/gbctl/pkg/data"
	"github.com/pkg/errors"
	urfave "github.com/urfave/cli/v2"
)

var enterCmd = &urfave.Command{
	Name:    "enter",
	Aliases: []string{"e"},
	Usage:   "Enter student scores interactively and print the full analysis",
	Action:  cmdEnter,
	Flags: []urfave.Flag{
		thresholdFlag,
	},
}

func cmdEnter(c *urfave.Context) error {
	start := time.Now()

	roster := data.ReadEntries(os.Stdin, os.Stdout)
	if roster.Len() == 0 {
		slog.Warn("no student data entered")
		return nil
	}

	report := data.Analyze(roster, getThreshold(c))

	if outputFormat == formatTable {
		renderReport(os.Stdout, report)
		return nil
	}

	out := &AnalyzeResult{
		Duration: time.Since(start).String(),
		Report:   report,
	}
	if err := encode(out); err != nil {
		return errors.Wrapf(err, "error encoding result: %+v", out)
	}
	return nil
}
