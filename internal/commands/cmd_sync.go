package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/editorcfg"
	"github.com/colonyops/scriptmeta/internal/core/interpreter"
	"github.com/colonyops/scriptmeta/internal/core/metadata"
	"github.com/colonyops/scriptmeta/internal/core/styles"
)

type SyncCmd struct {
	flags  *Flags
	dryRun bool
}

// NewSyncCmd creates a new sync command
func NewSyncCmd(flags *Flags) *SyncCmd {
	return &SyncCmd{flags: flags}
}

// Register adds the sync command to the application
func (cmd *SyncCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sync",
		Usage:     "Resolve a script's interpreter and record it in editor settings",
		UsageText: "scriptmeta sync [options] <file>",
		Description: `Checks the file for an inline metadata block, asks uv for the
interpreter that serves it, and writes the path into the editor
settings file governing the script (workspace .vscode/settings.json,
or the configured global fallback).

Set uv.sync_before_find in the config to run 'uv sync --script'
first so the environment exists before resolution.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "resolve the interpreter but do not write settings",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SyncCmd) run(ctx context.Context, c *cli.Command) error {
	scriptPath := c.Args().First()
	if scriptPath == "" {
		return fmt.Errorf("no file given. Run 'scriptmeta sync --help' for usage")
	}

	scriptPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	raw, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if !metadata.HasHeader(metadata.NewDocument(string(raw))) {
		fmt.Fprintf(c.Root().Writer, "%s %s\n",
			styles.TextWarningStyle.Render("●"),
			"no metadata block; nothing to sync")
		return nil
	}

	cfg := cmd.flags.Config
	resolver := interpreter.NewResolver(
		cmd.flags.Exec,
		cfg.UV.Path,
		cfg.UV.SyncBeforeFind,
		log.With().Str("component", "interpreter").Logger(),
	)

	interp, err := resolver.Resolve(ctx, scriptPath)
	if err != nil {
		return fmt.Errorf("resolve interpreter: %w", err)
	}

	settings := editorcfg.NewSettings(cfg.Editor, log.With().Str("component", "editorcfg").Logger())

	if cmd.dryRun {
		target, err := settings.TargetFor(scriptPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Root().Writer, "%s would set %s in %s\n",
			styles.TextMutedStyle.Render("dry-run:"), interp, target)
		return nil
	}

	target, wrote, err := settings.SetInterpreter(scriptPath, interp)
	if err != nil {
		return err
	}

	if wrote {
		fmt.Fprintf(c.Root().Writer, "%s %s %s %s\n",
			styles.TextSuccessStyle.Render("✔"), interp,
			styles.TextMutedStyle.Render("→"), target)
	} else {
		fmt.Fprintf(c.Root().Writer, "%s %s %s\n",
			styles.TextSuccessStyle.Render("✔"), interp,
			styles.TextMutedStyle.Render("(already set)"))
	}

	return nil
}
