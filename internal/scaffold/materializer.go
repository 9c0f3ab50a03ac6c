package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pwa-tools/pwagen/internal/config"
	"github.com/pwa-tools/pwagen/internal/debug"
)

// tplExt is the marker extension identifying template files that need
// placeholder substitution before they become final output. A .tpl file
// never survives materialization; its substituted content is written to the
// sibling path with the extension stripped.
const tplExt = ".tpl"

// processablePaths is the fixed list of template-relative paths that may
// carry the marker extension, per framework. Paths absent from the copied
// tree are skipped silently, so frameworks can share a common core list.
var processablePaths = map[config.Framework][]string{
	config.FrameworkReact: {
		"package.json.tpl",
		"index.html.tpl",
		"public/manifest.json.tpl",
		"vite.config.js.tpl",
		"src/index.css.tpl",
		"src/App.jsx.tpl",
		"src/components/InstallPrompt.jsx.tpl",
		"src/components/InstallPrompt.tailwind.jsx.tpl",
	},
	config.FrameworkVue: {
		"package.json.tpl",
		"index.html.tpl",
		"public/manifest.json.tpl",
		"vite.config.js.tpl",
		"src/index.css.tpl",
		"src/App.vue.tpl",
		"src/components/InstallPrompt.vue.tpl",
		"src/components/InstallPrompt.tailwind.vue.tpl",
	},
	config.FrameworkSvelte: {
		"package.json.tpl",
		"index.html.tpl",
		"public/manifest.json.tpl",
		"vite.config.js.tpl",
		"src/index.css.tpl",
		"src/App.svelte.tpl",
		"src/components/InstallPrompt.svelte.tpl",
		"src/components/InstallPrompt.tailwind.svelte.tpl",
	},
}

// Options configures a materialization run.
type Options struct {
	// Templates is the root filesystem holding one subtree per framework.
	// Both roots are explicit parameters; the materializer never consults
	// the process working directory.
	Templates fs.FS

	// DestDir is the directory the project is materialized into.
	DestDir string

	// Force allows materializing into an existing destination with
	// overwrite semantics. Without it, an existing destination is a
	// precondition failure.
	Force bool

	// StrictTokens makes an interpolation token with no matching
	// configuration field a fatal substitution error. The default is
	// lenient: unknown tokens pass through to the output verbatim.
	StrictTokens bool

	// DryRun lists what would be generated without writing anything.
	DryRun bool

	// SkipInstall suppresses the dependency install trigger.
	SkipInstall bool

	// PackageManager overrides install tool detection (npm, pnpm, yarn).
	PackageManager string
}

// Result contains materialization statistics.
type Result struct {
	// FilesCopied is the number of files written by the base copy.
	FilesCopied int

	// FilesProcessed is the number of marker-extension files substituted.
	FilesProcessed int

	// FilesSkipped is the number of processable paths absent from the
	// copied tree for the chosen framework.
	FilesSkipped int

	// Files holds the final destination-relative paths. In dry-run mode
	// these are the predicted paths.
	Files []string

	// InstalledWith names the package manager that ran the install
	// trigger; empty when skipped or failed.
	InstalledWith string

	// Warnings collects non-fatal conditions (e.g. install failure).
	Warnings []string
}

// Materialize turns a Configuration plus a template tree into a concrete
// project directory. The pipeline is strictly ordered: base copy, then
// placeholder substitution, then styling-variant resolution, then the
// best-effort install trigger. Fatal errors abort immediately; the
// destination may be left partially populated (scaffolding is re-run by
// deleting the partial directory).
func Materialize(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	if err := validateOptions(cfg, opts); err != nil {
		return nil, err
	}

	debug.Debug("[scaffold] Starting materialization: framework=%s, tailwind=%v, dest=%s, dryRun=%v",
		cfg.Framework, cfg.UseTailwind, opts.DestDir, opts.DryRun)

	// Precondition: the framework must index an existing template subtree.
	templateFS, err := fs.Sub(opts.Templates, string(cfg.Framework))
	if err != nil {
		return nil, newError(ErrPrecondition, "invalid framework template path", string(cfg.Framework), err)
	}
	if _, err := fs.Stat(templateFS, "."); err != nil {
		return nil, newError(ErrPrecondition,
			fmt.Sprintf("template tree for framework %q not found", cfg.Framework),
			string(cfg.Framework), err)
	}

	if opts.DryRun {
		return dryRun(templateFS, cfg)
	}

	// Precondition: fail closed on an existing destination. The collector's
	// collision check is advisory UX; this check is authoritative.
	if exists(opts.DestDir) && !opts.Force {
		return nil, newError(ErrPrecondition,
			"destination already exists (use --force to overwrite)",
			opts.DestDir, nil)
	}

	result := &Result{}

	// Step 1: base copy.
	copied, err := copyTree(ctx, templateFS, opts.DestDir)
	if err != nil {
		return nil, err
	}
	result.FilesCopied = len(copied)

	// Step 2: placeholder substitution over the fixed processable list.
	if err := substituteAll(cfg, opts, result); err != nil {
		return nil, err
	}

	// Step 3: styling-variant resolution.
	if err := resolveVariants(opts.DestDir, cfg.UseTailwind); err != nil {
		return nil, err
	}

	// Step 4: dependency install trigger (best-effort, ordered last).
	if !opts.SkipInstall {
		pm, err := runInstall(ctx, opts.DestDir, opts.PackageManager)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("dependency install skipped: %v", err))
		} else {
			result.InstalledWith = pm
		}
	}

	result.Files = finalFiles(opts.DestDir)
	debug.Debug("[scaffold] Materialization complete: copied=%d, processed=%d, skipped=%d",
		result.FilesCopied, result.FilesProcessed, result.FilesSkipped)
	return result, nil
}

// validateOptions checks the materializer inputs.
func validateOptions(cfg *config.Config, opts Options) error {
	if cfg == nil {
		return newError(ErrPrecondition, "configuration cannot be nil", "", nil)
	}
	if opts.Templates == nil {
		return newError(ErrPrecondition, "templates root cannot be nil", "", nil)
	}
	if opts.DestDir == "" {
		return newError(ErrPrecondition, "destination directory cannot be empty", "", nil)
	}
	if _, ok := processablePaths[cfg.Framework]; !ok {
		return newError(ErrPrecondition,
			fmt.Sprintf("unsupported framework %q", cfg.Framework), "", nil)
	}
	return nil
}

// substituteAll runs the placeholder substitution pass: for each
// processable path present in the destination, interpolate tokens, resolve
// markers, write the result to the marker-stripped sibling path and delete
// the marker file. Absent paths are skipped silently.
func substituteAll(cfg *config.Config, opts Options, result *Result) error {
	for _, rel := range processablePaths[cfg.Framework] {
		src := filepath.Join(opts.DestDir, filepath.FromSlash(rel))

		content, err := os.ReadFile(src)
		if err != nil {
			if os.IsNotExist(err) {
				// Not every framework ships every listed file.
				debug.Debug("[scaffold] Skipping absent processable file: %s", rel)
				result.FilesSkipped++
				continue
			}
			return newError(ErrCopy, "failed to read processable file", rel, err)
		}

		content, err = interpolateTokens(content, cfg, opts.StrictTokens)
		if err != nil {
			if serr, ok := err.(*Error); ok && serr.Path == "" {
				serr.Path = rel
			}
			return err
		}

		content = resolveMarkers(content, cfg.Framework, cfg.UseTailwind)

		dst := strings.TrimSuffix(src, tplExt)
		if err := writeFile(dst, content); err != nil {
			return err
		}
		if err := os.Remove(src); err != nil {
			return newError(ErrCopy, "failed to delete marker file", rel, err)
		}

		result.FilesProcessed++
	}

	return nil
}

// dryRun predicts the final file set without touching the filesystem.
func dryRun(templateFS fs.FS, cfg *config.Config) (*Result, error) {
	files, err := listTree(templateFS)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	seen := make(map[string]bool)

	for _, path := range files {
		name := filepath.Base(path)
		inComponents := filepath.ToSlash(filepath.Dir(path)) == componentsDir

		// Variant resolution prediction.
		if inComponents {
			tagged := hasTailwindTag(strings.TrimSuffix(name, tplExt))
			if cfg.UseTailwind != tagged {
				continue
			}
		}

		final := path
		if strings.HasSuffix(final, tplExt) {
			final = strings.TrimSuffix(final, tplExt)
			result.FilesProcessed++
		}
		if inComponents && cfg.UseTailwind {
			final = filepath.Join(filepath.Dir(final), stripTailwindTag(filepath.Base(final)))
		}

		if !seen[final] {
			seen[final] = true
			result.Files = append(result.Files, final)
		}
	}

	sort.Strings(result.Files)
	result.FilesCopied = len(result.Files)
	return result, nil
}

// finalFiles walks the destination and returns its relative file paths.
func finalFiles(destDir string) []string {
	var files []string
	_ = filepath.WalkDir(destDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rel, rerr := filepath.Rel(destDir, path)
		if rerr != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files
}
