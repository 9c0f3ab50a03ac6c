package scaffold

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// setupComponents creates a destination with a component directory holding
// the given files.
func setupComponents(t *testing.T, files []string) string {
	t.Helper()
	dest := t.TempDir()
	dir := filepath.Join(dest, "src", "components")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create component dir: %v", err)
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dest
}

// listComponents returns the sorted filenames in the component directory.
func listComponents(t *testing.T, dest string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dest, "src", "components"))
	if err != nil {
		t.Fatalf("failed to read component dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// TestResolveVariants tests styling-variant exclusivity: the final filename
// set is identical regardless of the tailwind flag.
func TestResolveVariants(t *testing.T) {
	files := []string{
		"FeatureCard.jsx",
		"FeatureCard.tailwind.jsx",
		"InstallPrompt.jsx",
		"InstallPrompt.tailwind.jsx",
	}
	want := []string{"FeatureCard.jsx", "InstallPrompt.jsx"}

	for _, useTailwind := range []bool{false, true} {
		t.Run(map[bool]string{false: "plain", true: "tailwind"}[useTailwind], func(t *testing.T) {
			dest := setupComponents(t, files)

			if err := resolveVariants(dest, useTailwind); err != nil {
				t.Fatalf("resolveVariants() = %v, want nil", err)
			}

			got := listComponents(t, dest)
			if len(got) != len(want) {
				t.Fatalf("component files = %v, want %v", got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("component files = %v, want %v", got, want)
					break
				}
			}

			// Contents differ by branch: the surviving files must come
			// from the winning variant set.
			content, err := os.ReadFile(filepath.Join(dest, "src", "components", "FeatureCard.jsx"))
			if err != nil {
				t.Fatalf("failed to read survivor: %v", err)
			}
			wantContent := "FeatureCard.jsx"
			if useTailwind {
				wantContent = "FeatureCard.tailwind.jsx"
			}
			if string(content) != wantContent {
				t.Errorf("survivor content = %q, want %q", content, wantContent)
			}
		})
	}
}

// TestResolveVariants_MissingDir tests the fatal precondition on a missing
// component directory.
func TestResolveVariants_MissingDir(t *testing.T) {
	dest := t.TempDir()

	err := resolveVariants(dest, false)
	if err == nil {
		t.Fatal("resolveVariants() = nil, want error")
	}

	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if serr.Kind != ErrComponentDir {
		t.Errorf("error kind = %d, want ErrComponentDir", serr.Kind)
	}
}

// TestTailwindTagHelpers tests tag detection and stripping.
func TestTailwindTagHelpers(t *testing.T) {
	tests := []struct {
		name     string
		tagged   bool
		stripped string
	}{
		{"FeatureCard.tailwind.jsx", true, "FeatureCard.jsx"},
		{"InstallPrompt.tailwind.vue", true, "InstallPrompt.vue"},
		{"FeatureCard.jsx", false, "FeatureCard.jsx"},
		{"tailwind.config.js", false, "tailwind.config.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasTailwindTag(tt.name); got != tt.tagged {
				t.Errorf("hasTailwindTag(%q) = %v, want %v", tt.name, got, tt.tagged)
			}
			if got := stripTailwindTag(tt.name); got != tt.stripped {
				t.Errorf("stripTailwindTag(%q) = %q, want %q", tt.name, got, tt.stripped)
			}
		})
	}
}
