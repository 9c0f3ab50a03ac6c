package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pwa-tools/pwagen/internal/debug"
)

// componentsDir is the destination-relative directory holding dual-variant
// component files, shared by all framework templates.
const componentsDir = "src/components"

// tailwindTag is the filename fragment distinguishing the Tailwind variant
// of a component from its plain counterpart, as in FeatureCard.tailwind.jsx.
const tailwindTag = ".tailwind"

// hasTailwindTag reports whether a component filename carries the variant tag.
func hasTailwindTag(name string) bool {
	return strings.Contains(name, tailwindTag+".")
}

// stripTailwindTag removes the variant tag from a filename, so
// FeatureCard.tailwind.jsx becomes FeatureCard.jsx.
func stripTailwindTag(name string) string {
	return strings.Replace(name, tailwindTag+".", ".", 1)
}

// resolveVariants enforces styling-variant exclusivity in the component
// directory: with Tailwind disabled every tagged file is deleted; with
// Tailwind enabled every untagged file is deleted and the tagged survivors
// are renamed tag-free, so the final filename set is identical either way.
// The component directory must exist after the base copy.
func resolveVariants(destDir string, useTailwind bool) error {
	dir := filepath.Join(destDir, filepath.FromSlash(componentsDir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return newError(ErrComponentDir, "component directory missing after copy", dir, err)
	}

	deleted := 0
	renamed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		tagged := hasTailwindTag(name)

		switch {
		case !useTailwind && tagged:
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return newError(ErrCopy, "failed to delete tailwind variant", name, err)
			}
			deleted++
		case useTailwind && !tagged:
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return newError(ErrCopy, "failed to delete plain variant", name, err)
			}
			deleted++
		}
	}

	if useTailwind {
		// Second pass: strip the tag from the surviving variants.
		entries, err = os.ReadDir(dir)
		if err != nil {
			return newError(ErrComponentDir, "failed to re-read component directory", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !hasTailwindTag(name) {
				continue
			}
			if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, stripTailwindTag(name))); err != nil {
				return newError(ErrCopy, "failed to rename tailwind variant", name, err)
			}
			renamed++
		}
	}

	debug.Debug("[scaffold] Variant resolution: tailwind=%v, deleted=%d, renamed=%d", useTailwind, deleted, renamed)
	return nil
}
