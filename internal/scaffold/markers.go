package scaffold

import (
	"regexp"
	"strings"

	"github.com/pwa-tools/pwagen/internal/config"
	"github.com/pwa-tools/pwagen/internal/debug"
)

// markerLinePattern matches a marker line: a line consisting solely of a
// `// identifier` comment (leading whitespace allowed).
var markerLinePattern = regexp.MustCompile(`^\s*//\s*([a-z][a-z0-9-]*)\s*$`)

// markerDef binds a marker identifier to its replacement snippet and the
// feature flag that enables it. A disabled marker line is removed from the
// output; an enabled one is replaced by its snippet.
type markerDef struct {
	snippet       string
	needsTailwind bool // enabled only when Config.UseTailwind is set
}

// tailwindMarkers returns the Tailwind marker set. The identifiers and
// snippets happen to coincide for all three frameworks today, but the
// registry stays keyed by framework so snippets can diverge.
func tailwindMarkers() map[string]markerDef {
	return map[string]markerDef{
		"tailwind-devdeps": {
			snippet:       "    \"@tailwindcss/vite\": \"^4.0.14\",\n    \"tailwindcss\": \"^4.0.14\",",
			needsTailwind: true,
		},
		"tailwind-import": {
			snippet:       "import tailwindcss from '@tailwindcss/vite'",
			needsTailwind: true,
		},
		"tailwind-plugin": {
			snippet:       "    tailwindcss(),",
			needsTailwind: true,
		},
		"tailwind-css": {
			snippet:       `@import "tailwindcss";`,
			needsTailwind: true,
		},
	}
}

// markerRegistry is the closed (framework, identifier) -> snippet table.
// Markers registered for a different framework than the one being
// materialized are left untouched.
var markerRegistry = map[config.Framework]map[string]markerDef{
	config.FrameworkReact:  tailwindMarkers(),
	config.FrameworkVue:    tailwindMarkers(),
	config.FrameworkSvelte: tailwindMarkers(),
}

// Markers returns the marker identifiers registered for a framework.
func Markers(fw config.Framework) []string {
	defs := markerRegistry[fw]
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	return ids
}

// resolveMarkers rewrites marker lines in content for the given framework.
// Enabled markers are replaced by their snippet, disabled markers are
// removed, and identifiers not registered for this framework stay as-is.
func resolveMarkers(content []byte, fw config.Framework, useTailwind bool) []byte {
	defs := markerRegistry[fw]
	if len(defs) == 0 {
		return content
	}

	lines := strings.Split(string(content), "\n")
	result := make([]string, 0, len(lines))
	replaced := 0
	removed := 0

	for _, line := range lines {
		m := markerLinePattern.FindStringSubmatch(line)
		if m == nil {
			result = append(result, line)
			continue
		}

		def, ok := defs[m[1]]
		if !ok {
			// Not a registered marker for this framework.
			result = append(result, line)
			continue
		}

		if !def.needsTailwind || useTailwind {
			result = append(result, def.snippet)
			replaced++
		} else {
			removed++
		}
	}

	debug.Debug("[scaffold] Marker resolution (%s): %d replaced, %d removed", fw, replaced, removed)
	return []byte(strings.Join(result, "\n"))
}
