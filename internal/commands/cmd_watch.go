package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/editorcfg"
	"github.com/colonyops/scriptmeta/internal/core/interpreter"
	"github.com/colonyops/scriptmeta/internal/core/metadata"
	"github.com/colonyops/scriptmeta/internal/core/styles"
	"github.com/colonyops/scriptmeta/internal/core/watch"
)

type WatchCmd struct {
	flags *Flags
}

// NewWatchCmd creates a new watch command
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Register adds the watch command to the application
func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Sync scripts automatically as they change",
		UsageText: "scriptmeta watch [dir]",
		Description: `Watches a directory tree and runs the sync pipeline for every
changed file matching the configured globs (watch.globs, default
'**/*.py'). Files without a metadata block are skipped.

Runs until interrupted.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	root := c.Args().First()
	if root == "" {
		root = "."
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}

	cfg := cmd.flags.Config
	resolver := interpreter.NewResolver(
		cmd.flags.Exec,
		cfg.UV.Path,
		cfg.UV.SyncBeforeFind,
		log.With().Str("component", "interpreter").Logger(),
	)
	settings := editorcfg.NewSettings(cfg.Editor, log.With().Str("component", "editorcfg").Logger())

	handler := func(ctx context.Context, path string) {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("read changed file")
			return
		}

		if !metadata.HasHeader(metadata.NewDocument(string(raw))) {
			log.Debug().Str("path", path).Msg("no metadata block; skipping")
			return
		}

		interp, err := resolver.Resolve(ctx, path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("resolve interpreter")
			fmt.Fprintf(os.Stderr, "%s %s %s\n",
				styles.TextErrorStyle.Render("✘"), path, styles.TextMutedStyle.Render(err.Error()))
			return
		}

		target, wrote, err := settings.SetInterpreter(path, interp)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("write settings")
			fmt.Fprintf(os.Stderr, "%s %s %s\n",
				styles.TextErrorStyle.Render("✘"), path, styles.TextMutedStyle.Render(err.Error()))
			return
		}

		if wrote {
			fmt.Fprintf(os.Stderr, "%s %s %s %s\n",
				styles.TextSuccessStyle.Render("✔"), path,
				styles.TextMutedStyle.Render("→"), target)
		}
	}

	watcher, err := watch.New(root, cfg.Watch.Globs, cfg.Watch.Debounce, handler,
		log.With().Str("component", "watch").Logger())
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		styles.TextPrimaryBoldStyle.Render("watching"), root)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return watcher.Close()
}
