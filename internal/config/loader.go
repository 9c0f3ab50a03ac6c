package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// LoadAnswers reads a YAML answers file and returns a validated Config.
// Answers files allow non-interactive scaffolding (CI, scripted setups):
//
//	projectName: demo1
//	framework: react
//	useTailwind: true
//	pwa:
//	  name: Demo
//	  shortName: Demo
//	  themeColor: "#317EFB"
//	  backgroundColor: "#FFFFFF"
//	  displayMode: standalone
//
// Optional fields are defaulted the same way the interactive collector
// defaults them before validation runs.
func LoadAnswers(path string) (*Config, error) {
	debug.Debug("[config] Loading answers file: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewFileError(ConfigNotFound, path, "answers file not found", err)
		}
		return nil, NewFileError(ConfigInvalid, path, "failed to read answers file", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewFileError(ConfigInvalid, path, "failed to parse answers file", err)
	}

	cfg.ApplyDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	debug.Debug("[config] Answers loaded: project=%s, framework=%s, tailwind=%v",
		cfg.ProjectName, cfg.Framework, cfg.UseTailwind)
	return &cfg, nil
}
