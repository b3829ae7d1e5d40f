package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// LoadFile reads content from a YAML file and validates it
func LoadFile(path string) (models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Content{}, fmt.Errorf("reading content file: %w", err)
	}

	var c models.Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return models.Content{}, fmt.Errorf("parsing content file %s: %w", path, err)
	}

	if err := Validate(c); err != nil {
		return models.Content{}, fmt.Errorf("invalid content file %s: %w", path, err)
	}

	return c, nil
}
