// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// ScriptName validates a script name is non-empty after trimming whitespace
// and contains no path separators.
func ScriptName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(trimmed, `/\`) {
		return fmt.Errorf("name cannot contain path separators")
	}
	return nil
}

// ScriptNameField returns a criterio validator for script names.
func ScriptNameField(field, name string) error {
	return criterio.Run(field, name, ScriptName)
}
