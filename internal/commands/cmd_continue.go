package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/metadata"
	"github.com/colonyops/scriptmeta/pkg/iojson"
)

// continueRequest is the JSON request body accepted on stdin or via -f.
// Editors with unsaved buffers send the buffer inline instead of a path.
type continueRequest struct {
	Line   int    `json:"line"`
	Char   int    `json:"char"`
	Buffer string `json:"buffer"`
}

type ContinueCmd struct {
	flags  *Flags
	reader iojson.FileReader[continueRequest]

	line int
	char int
}

// NewContinueCmd creates a new continue command
func NewContinueCmd(flags *Flags) *ContinueCmd {
	return &ContinueCmd{flags: flags}
}

// Register adds the continue command to the application
func (cmd *ContinueCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "continue",
		Usage:     "Compute the newline insertion for a cursor position",
		UsageText: "scriptmeta continue --line N --char M <file>",
		Description: `Computes what an editor should insert when the user presses Enter
at the given position. Inside a metadata block the comment prefix is
carried onto the new line; everywhere else the result is a bare
line break.

With --line and --char the buffer is read from the file argument.
Without them, a JSON request is read from stdin (or the -f file),
letting editors pass unsaved buffers inline:

  {"line": 2, "char": 14, "buffer": "# /// script\n..."}

Either way the insertion is printed as a single JSON line:

  {"text":"\n# "}`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "line",
				Usage:       "zero-based cursor line",
				Value:       -1,
				Destination: &cmd.line,
			},
			&cli.IntFlag{
				Name:        "char",
				Usage:       "zero-based cursor column (byte offset)",
				Value:       -1,
				Destination: &cmd.char,
			},
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ContinueCmd) run(_ context.Context, c *cli.Command) error {
	req, err := cmd.request(c)
	if err != nil {
		return err
	}

	doc := metadata.NewDocument(req.Buffer)
	insert := metadata.Continuation(doc, metadata.Position{Line: req.Line, Char: req.Char})

	return iojson.WriteLine(c.Root().Writer, insert)
}

func (cmd *ContinueCmd) request(c *cli.Command) (continueRequest, error) {
	if cmd.line < 0 && cmd.char < 0 {
		return cmd.reader.Read()
	}

	if cmd.line < 0 || cmd.char < 0 {
		return continueRequest{}, fmt.Errorf("--line and --char must be given together")
	}

	var raw []byte
	var err error

	if path := c.Args().First(); path != "" {
		raw, err = os.ReadFile(path)
		if err != nil {
			return continueRequest{}, fmt.Errorf("read buffer: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return continueRequest{}, fmt.Errorf("read stdin: %w", err)
		}
	}

	return continueRequest{Line: cmd.line, Char: cmd.char, Buffer: string(raw)}, nil
}
