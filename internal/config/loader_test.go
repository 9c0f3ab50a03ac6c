package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeAnswers writes an answers file into a temp dir and returns its path.
func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write answers file: %v", err)
	}
	return path
}

// TestLoadAnswers_OK tests loading a complete answers file.
func TestLoadAnswers_OK(t *testing.T) {
	path := writeAnswers(t, `
projectName: demo1
framework: react
useTailwind: true
pwa:
  name: Demo
  shortName: Demo
  themeColor: "#317EFB"
  backgroundColor: "#FFFFFF"
  displayMode: standalone
`)

	cfg, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("LoadAnswers() = %v, want nil", err)
	}

	if cfg.ProjectName != "demo1" {
		t.Errorf("ProjectName = %q, want %q", cfg.ProjectName, "demo1")
	}
	if cfg.Framework != FrameworkReact {
		t.Errorf("Framework = %q, want %q", cfg.Framework, FrameworkReact)
	}
	if !cfg.UseTailwind {
		t.Error("UseTailwind = false, want true")
	}
	if cfg.PWA.ThemeColor != "#317EFB" {
		t.Errorf("ThemeColor = %q, want %q", cfg.PWA.ThemeColor, "#317EFB")
	}
	if cfg.PWA.IconPath != DefaultIconPath {
		t.Errorf("IconPath = %q, want default %q", cfg.PWA.IconPath, DefaultIconPath)
	}
}

// TestLoadAnswers_Defaults tests that optional fields are defaulted.
func TestLoadAnswers_Defaults(t *testing.T) {
	path := writeAnswers(t, `
projectName: demo1
framework: svelte
pwa:
  themeColor: "#000000"
  backgroundColor: "#FFFFFF"
`)

	cfg, err := LoadAnswers(path)
	if err != nil {
		t.Fatalf("LoadAnswers() = %v, want nil", err)
	}

	if cfg.PWA.Name != "demo1" {
		t.Errorf("PWA.Name = %q, want project name default", cfg.PWA.Name)
	}
	if cfg.PWA.DisplayMode != DisplayStandalone {
		t.Errorf("DisplayMode = %q, want %q", cfg.PWA.DisplayMode, DisplayStandalone)
	}
}

// TestLoadAnswers_Errors tests the loader error taxonomy.
func TestLoadAnswers_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadAnswers(filepath.Join(t.TempDir(), "nope.yaml"))
		cerr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("error type = %T, want *ConfigError", err)
		}
		if cerr.Type != ConfigNotFound {
			t.Errorf("error type = %d, want ConfigNotFound", cerr.Type)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeAnswers(t, "projectName: [unclosed")
		_, err := LoadAnswers(path)
		cerr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("error type = %T, want *ConfigError", err)
		}
		if cerr.Type != ConfigInvalid {
			t.Errorf("error type = %d, want ConfigInvalid", cerr.Type)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		path := writeAnswers(t, `
projectName: demo1
framework: angular
pwa:
  themeColor: "#000000"
  backgroundColor: "#FFFFFF"
`)
		_, err := LoadAnswers(path)
		cerr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("error type = %T, want *ConfigError", err)
		}
		if cerr.Type != ConfigValidationFailed {
			t.Errorf("error type = %d, want ConfigValidationFailed", cerr.Type)
		}
	})
}
