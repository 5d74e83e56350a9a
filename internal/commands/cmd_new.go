package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/scaffold"
	"github.com/colonyops/scriptmeta/internal/core/styles"
	"github.com/colonyops/scriptmeta/internal/core/validate"
)

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	name     string
	template string
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a script with an inline metadata block",
		UsageText: "scriptmeta new [options] [name]",
		Description: `Scaffolds a new Python script carrying a '# /// script' metadata
block, ready for 'uv run'.

The name argument becomes the file name; '.py' is appended when
missing. When the name is omitted, an interactive form prompts for
it. Existing files are never overwritten.

Templates defined under 'templates' in the config are selectable
with --template.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "config template to render instead of the built-in default",
				Destination: &cmd.template,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(_ context.Context, c *cli.Command) error {
	cmd.name = c.Args().First()

	scaffolder := scaffold.New(cmd.flags.Config.Templates, log.With().Str("component", "scaffold").Logger())

	if cmd.name == "" {
		if err := cmd.runForm(scaffolder); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := validate.ScriptNameField("name", cmd.name); err != nil {
		return err
	}

	path := cmd.name
	if !strings.HasSuffix(path, ".py") {
		path += ".py"
	}

	data := scaffold.Data{
		Name: strings.TrimSuffix(filepath.Base(path), ".py"),
		Path: path,
	}

	if err := scaffolder.Create(path, cmd.template, data); err != nil {
		return err
	}

	fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.TextSuccessStyle.Render("✔"), path)
	return nil
}

func (cmd *NewCmd) runForm(scaffolder *scaffold.Scaffolder) error {
	fields := []huh.Field{
		huh.NewInput().
			Title("Script name").
			Description("File name for the new script").
			Validate(validate.ScriptName).
			Value(&cmd.name),
	}

	if names := scaffolder.Names(); len(names) > 0 && cmd.template == "" {
		options := []huh.Option[string]{huh.NewOption("default (built-in)", "")}
		for _, name := range names {
			options = append(options, huh.NewOption(name, name))
		}

		fields = append(fields, huh.NewSelect[string]().
			Title("Template").
			Options(options...).
			Value(&cmd.template))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
