package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

//go:embed guide.md
var guideMarkdown string

type GuideCmd struct {
	flags *Flags
	raw   bool
}

func NewGuideCmd(flags *Flags) *GuideCmd {
	return &GuideCmd{flags: flags}
}

func (cmd *GuideCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "guide",
		Usage:     "Show the editor integration guide",
		UsageText: "scriptmeta guide [options]",
		Description: `Prints documentation on wiring scriptmeta into an editor: keystroke
handling for the continue command, save hooks for sync, and the JSON
contracts each command speaks.

Rendered for the terminal when stdout is a TTY; raw markdown
otherwise (or with --raw), so the output pipes cleanly.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print raw markdown without terminal rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *GuideCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	fd := int(os.Stdout.Fd())
	if cmd.raw || !term.IsTerminal(fd) {
		_, err := fmt.Fprintln(w, guideMarkdown)
		return err
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 || width > 100 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(guideMarkdown)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}
