package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for a missing or unusable l10n.yaml.
var ErrInvalidConfig = errors.New("invalid configuration")

type config struct {
	ArbDir string `yaml:"arb-dir"`
}

// arbDir locates <project>/l10n.yaml and resolves its 'arb-dir' entry
// relative to the configuration file's own directory.
func arbDir(project string) (string, error) {
	path := filepath.Join(project, "l10n.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if strings.TrimSpace(cfg.ArbDir) == "" {
		return "", fmt.Errorf("%w: missing 'arb-dir' key in %s", ErrInvalidConfig, path)
	}

	if filepath.IsAbs(cfg.ArbDir) {
		return cfg.ArbDir, nil
	}

	return filepath.Join(filepath.Dir(path), cfg.ArbDir), nil
}
