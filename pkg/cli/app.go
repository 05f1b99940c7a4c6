package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/classware/gbctl/pkg/config"
	"github.com/classware/gbctl/pkg/data"
	"github.com/classware/gbctl/pkg/logging"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "gbctl"
	appConfigKey = "app-config"

	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("Output format [%s, %s, %s]", formatJSON, formatYAML, formatTable),
	}

	configDirFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: fmt.Sprintf("Path to the config directory (optional, defaults to $HOME/.%s)", appName),
	}

	thresholdFlag = &urfave.IntFlag{
		Name:  "threshold",
		Usage: fmt.Sprintf("Minimum passing score (default: %d)", data.PassThresholdDefault),
		Value: data.PassThresholdDefault,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	ConfigDir string
	Conf      *config.Config
	Debug     bool
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

// getThreshold resolves the pass threshold: flag wins over config.
func getThreshold(c *urfave.Context) int {
	if c.IsSet(thresholdFlag.Name) {
		return c.Int(thresholdFlag.Name)
	}
	return getConfig(c).Conf.PassThreshold
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 appName,
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for quick insight into classroom gradebook data",
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
			configDirFlag,
		},
		Commands: []*urfave.Command{
			analyzeCmd,
			enterCmd,
			serverCmd,
		},
		Before: func(c *urfave.Context) error {
			dir := c.String(configDirFlag.Name)
			if dir == "" {
				var err error
				dir, _, err = config.GetOrCreateHomeDir(appName)
				if err != nil {
					return fmt.Errorf("resolving config dir: %w", err)
				}
			}

			conf, err := config.ReadOrCreate(dir)
			if err != nil {
				return fmt.Errorf("reading config: %w", err)
			}

			level := conf.LogLevel
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level)

			outputFormat = conf.Format
			switch c.String(formatFlag.Name) {
			case formatJSON:
				outputFormat = formatJSON
			case formatYAML, "yml":
				outputFormat = formatYAML
			case formatTable:
				outputFormat = formatTable
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				ConfigDir: dir,
				Conf:      conf,
				Debug:     c.Bool(debugFlag.Name),
			}
			return nil
		},
	}
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
