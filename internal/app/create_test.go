package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pwa-tools/pwagen/internal/config"
)

func demoConfig() *config.Config {
	return &config.Config{
		ProjectName: "demo1",
		Framework:   config.FrameworkReact,
		PWA: config.PWA{
			Name:            "Demo",
			ShortName:       "Demo",
			ThemeColor:      "#317EFB",
			BackgroundColor: "#FFFFFF",
			DisplayMode:     config.DisplayStandalone,
			IconPath:        config.DefaultIconPath,
		},
	}
}

// TestCreate tests project creation against the embedded templates.
func TestCreate(t *testing.T) {
	parent := t.TempDir()

	result, err := Create(context.Background(), CreateOptions{
		Config:      demoConfig(),
		ParentDir:   parent,
		SkipInstall: true,
	})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}

	if result.FilesCopied == 0 {
		t.Error("FilesCopied = 0, want > 0")
	}

	manifest := filepath.Join(parent, "demo1", "public", "manifest.json")
	content, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if !strings.Contains(string(content), `"name": "Demo"`) {
		t.Error("manifest not substituted")
	}
}

// TestCreate_InvalidConfig tests that validation runs before any write.
func TestCreate_InvalidConfig(t *testing.T) {
	parent := t.TempDir()
	cfg := demoConfig()
	cfg.Framework = "angular"

	_, err := Create(context.Background(), CreateOptions{
		Config:      cfg,
		ParentDir:   parent,
		SkipInstall: true,
	})
	if err == nil {
		t.Fatal("Create() = nil, want error")
	}

	aerr, ok := err.(*AppError)
	if !ok {
		t.Fatalf("error type = %T, want *AppError", err)
	}
	if aerr.Type != ValidationFailed {
		t.Errorf("error type = %d, want ValidationFailed", aerr.Type)
	}

	entries, rerr := os.ReadDir(parent)
	if rerr != nil {
		t.Fatalf("failed to read parent: %v", rerr)
	}
	if len(entries) != 0 {
		t.Errorf("parent dir was written to: %v", entries)
	}
}

// TestCreate_TemplatesDirOverride tests the on-disk templates root.
func TestCreate_TemplatesDirOverride(t *testing.T) {
	templatesDir := t.TempDir()
	reactDir := filepath.Join(templatesDir, "react")
	for rel, content := range map[string]string{
		"package.json.tpl":                `{"name": "<%= projectName %>"}`,
		"src/components/Box.jsx":          "plain",
		"src/components/Box.tailwind.jsx": "tailwind",
	} {
		path := filepath.Join(reactDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}

	parent := t.TempDir()
	_, err := Create(context.Background(), CreateOptions{
		Config:       demoConfig(),
		ParentDir:    parent,
		TemplatesDir: templatesDir,
		SkipInstall:  true,
	})
	if err != nil {
		t.Fatalf("Create() = %v, want nil", err)
	}

	content, err := os.ReadFile(filepath.Join(parent, "demo1", "package.json"))
	if err != nil {
		t.Fatalf("failed to read package.json: %v", err)
	}
	if string(content) != `{"name": "demo1"}` {
		t.Errorf("package.json = %q, want substituted content", content)
	}
}

// TestCreate_MissingTemplatesDir tests the override error path.
func TestCreate_MissingTemplatesDir(t *testing.T) {
	_, err := Create(context.Background(), CreateOptions{
		Config:       demoConfig(),
		ParentDir:    t.TempDir(),
		TemplatesDir: filepath.Join(t.TempDir(), "nope"),
		SkipInstall:  true,
	})
	if err == nil {
		t.Fatal("Create() = nil, want error")
	}
}
