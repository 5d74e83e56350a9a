package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/metadata"
	"github.com/colonyops/scriptmeta/internal/core/styles"
	"github.com/colonyops/scriptmeta/pkg/iojson"
)

type DetectCmd struct {
	flags *Flags
	json  bool
}

// NewDetectCmd creates a new detect command
func NewDetectCmd(flags *Flags) *DetectCmd {
	return &DetectCmd{flags: flags}
}

// Register adds the detect command to the application
func (cmd *DetectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "detect",
		Usage:     "Check files for an inline script metadata block",
		UsageText: "scriptmeta detect [options] <file>...",
		Description: `Scans the first 20 lines of each file for a '# /// script' open
marker and reports a verdict per file.

Exits non-zero when any file lacks a metadata block, so the command
works as a filter in shell pipelines.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output verdicts as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})

	return app
}

type detectVerdict struct {
	File      string `json:"file"`
	HasHeader bool   `json:"has_header"`
	Error     string `json:"error,omitempty"`
}

func (cmd *DetectCmd) run(_ context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("no files given. Run 'scriptmeta detect --help' for usage")
	}

	verdicts := make([]detectVerdict, 0, c.Args().Len())
	missing := 0

	for _, path := range c.Args().Slice() {
		v := detectVerdict{File: path}

		raw, err := os.ReadFile(path)
		if err != nil {
			v.Error = err.Error()
			missing++
		} else {
			v.HasHeader = metadata.HasHeader(metadata.NewDocument(string(raw)))
			if !v.HasHeader {
				missing++
			}
		}

		verdicts = append(verdicts, v)
	}

	if cmd.json {
		if err := iojson.WriteWith(c.Root().Writer, os.Stderr, verdicts); err != nil {
			return err
		}
	} else {
		for _, v := range verdicts {
			switch {
			case v.Error != "":
				fmt.Fprintf(c.Root().Writer, "%s %s %s\n",
					styles.TextErrorStyle.Render("✘"), v.File, styles.TextMutedStyle.Render(v.Error))
			case v.HasHeader:
				fmt.Fprintf(c.Root().Writer, "%s %s\n",
					styles.TextSuccessStyle.Render("✔"), v.File)
			default:
				fmt.Fprintf(c.Root().Writer, "%s %s %s\n",
					styles.TextWarningStyle.Render("●"), v.File, styles.TextMutedStyle.Render("no metadata block"))
			}
		}
	}

	if missing > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
