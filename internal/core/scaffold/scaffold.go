// Package scaffold creates new metadata-carrying scripts from templates.
package scaffold

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/colonyops/scriptmeta/internal/core/config"
	"github.com/colonyops/scriptmeta/pkg/tmpl"
)

//go:embed templates/script.py.tmpl
var defaultTemplate string

// Data is the template payload for a new script.
type Data struct {
	// Name is the script name without extension.
	Name string
	// Path is the destination file path.
	Path string
}

// Scaffolder renders script templates to disk.
type Scaffolder struct {
	templates map[string]config.Template
	logger    zerolog.Logger
}

// New creates a scaffolder over the configured templates. The built-in
// default template is always available under the empty name.
func New(templates map[string]config.Template, logger zerolog.Logger) *Scaffolder {
	return &Scaffolder{templates: templates, logger: logger}
}

// Names returns the configured template names, sorted.
func (s *Scaffolder) Names() []string {
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes a new script at path using the named template, or the
// built-in default when name is empty. Existing files are never overwritten.
func (s *Scaffolder) Create(path, name string, data Data) error {
	content := defaultTemplate
	if name != "" {
		t, ok := s.templates[name]
		if !ok {
			return fmt.Errorf("unknown template %q", name)
		}
		content = t.Content
	}

	rendered, err := tmpl.Render(content, data)
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create script dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o755)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists", path)
		}
		return fmt.Errorf("create script: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(rendered); err != nil {
		return fmt.Errorf("write script: %w", err)
	}

	s.logger.Info().Str("path", path).Str("template", name).Msg("created script")
	return nil
}
