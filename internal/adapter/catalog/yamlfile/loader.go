// Package yamlfile loads a game catalog from a YAML file. Keys missing from
// the file keep their compiled-in defaults.
package yamlfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"infernocorp/internal/domain/game"
)

// Load returns the default catalog when path is empty.
func Load(path string) (game.Catalog, error) {
	cat := game.DefaultCatalog()
	if strings.TrimSpace(path) == "" {
		return cat, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return game.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (game.Catalog, error) {
	cat := game.DefaultCatalog()
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return game.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return game.Catalog{}, err
	}
	return cat, nil
}
