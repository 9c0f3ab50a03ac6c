package scaffold

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// defaultIgnorePatterns are junk paths never copied out of a template tree.
// On-disk template roots picked up with --templates tend to accumulate these.
var defaultIgnorePatterns = []string{
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/node_modules/**",
	"**/.git/**",
}

// shouldIgnore reports whether a template-relative path matches any of the
// ignore patterns.
func shouldIgnore(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, relPath)
		if err != nil {
			// Invalid pattern; treat as non-matching.
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// copyTree recursively copies the template tree rooted at templateFS into
// destDir with overwrite semantics. Returns the destination-relative paths
// of the files written. The copy is not transactional: a failure partway
// through leaves a partially populated destination.
func copyTree(ctx context.Context, templateFS fs.FS, destDir string) ([]string, error) {
	var copied []string

	err := fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(ErrCopy, "failed to walk template tree", path, err)
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if path == "." {
			return nil
		}

		if shouldIgnore(path, defaultIgnorePatterns) {
			debug.Debug("[scaffold] Ignoring template path: %s", path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(destDir, filepath.FromSlash(path))

		if d.IsDir() {
			return createDir(target)
		}

		content, err := fs.ReadFile(templateFS, path)
		if err != nil {
			return newError(ErrCopy, "failed to read template file", path, err)
		}

		if err := writeFile(target, content); err != nil {
			return err
		}

		copied = append(copied, path)
		return nil
	})
	if err != nil {
		return copied, err
	}

	debug.Debug("[scaffold] Base copy complete: %d files", len(copied))
	return copied, nil
}

// listTree returns the files a copy of templateFS would produce, without
// writing anything. Used by dry-run mode.
func listTree(templateFS fs.FS) ([]string, error) {
	var files []string

	err := fs.WalkDir(templateFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(ErrCopy, "failed to walk template tree", path, err)
		}
		if path == "." || d.IsDir() {
			if d != nil && d.IsDir() && path != "." && shouldIgnore(path, defaultIgnorePatterns) {
				return fs.SkipDir
			}
			return nil
		}
		if shouldIgnore(path, defaultIgnorePatterns) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
