package doctor

import (
	"context"
	"os"

	"github.com/colonyops/scriptmeta/internal/core/config"
)

// ConfigCheck verifies the config file loads and validates.
type ConfigCheck struct {
	path string
}

// NewConfigCheck creates a config check for the given config path.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: "not present; using defaults",
		})
		return result
	}

	if _, err := config.Load(c.path); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "config file",
		Status: StatusPass,
		Detail: c.path,
	})

	return result
}
