package app

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pwa-tools/pwagen/internal/config"
	"github.com/pwa-tools/pwagen/internal/debug"
	"github.com/pwa-tools/pwagen/internal/scaffold"
	"github.com/pwa-tools/pwagen/templates"
)

// CreateOptions configures project creation.
type CreateOptions struct {
	// Config is the validated configuration from the collector.
	Config *config.Config

	// ParentDir is the directory the project directory is created under,
	// usually the CLI's working directory, resolved once and passed down.
	ParentDir string

	// TemplatesDir optionally overrides the embedded template trees with
	// an on-disk root laid out the same way (react/, vue/, svelte/).
	TemplatesDir string

	// Force allows overwriting an existing destination.
	Force bool

	// StrictTokens fails fast on unknown interpolation tokens.
	StrictTokens bool

	// DryRun lists what would be generated without writing files.
	DryRun bool

	// SkipInstall suppresses the dependency install step.
	SkipInstall bool

	// PackageManager overrides install tool detection.
	PackageManager string
}

// Create validates the configuration and materializes the project under
// ParentDir/ProjectName.
func Create(ctx context.Context, opts CreateOptions) (*scaffold.Result, error) {
	if err := config.Validate(opts.Config); err != nil {
		return nil, NewAppError(ValidationFailed, "invalid configuration", err)
	}

	templatesFS, err := resolveTemplates(opts.TemplatesDir)
	if err != nil {
		return nil, err
	}

	destDir := filepath.Join(opts.ParentDir, opts.Config.ProjectName)
	debug.Debug("[app] Creating project: dest=%s, templatesDir=%q", destDir, opts.TemplatesDir)

	result, err := scaffold.Materialize(ctx, opts.Config, scaffold.Options{
		Templates:      templatesFS,
		DestDir:        destDir,
		Force:          opts.Force,
		StrictTokens:   opts.StrictTokens,
		DryRun:         opts.DryRun,
		SkipInstall:    opts.SkipInstall,
		PackageManager: opts.PackageManager,
	})
	if err != nil {
		return nil, NewAppError(MaterializeFailed, "failed to materialize project", err)
	}

	return result, nil
}

// resolveTemplates returns the template root: the embedded trees by
// default, or an on-disk root when overridden.
func resolveTemplates(dir string) (fs.FS, error) {
	if dir == "" {
		return templates.FS, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, NewAppError(MaterializeFailed, "templates directory not found", err)
	}
	if !info.IsDir() {
		return nil, NewAppError(MaterializeFailed, "templates path is not a directory", nil)
	}

	return os.DirFS(dir), nil
}
