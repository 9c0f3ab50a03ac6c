package scaffold

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pwa-tools/pwagen/internal/config"
	"github.com/pwa-tools/pwagen/internal/debug"
)

// tokenPattern matches interpolation tokens of the form `<%= field.path %>`.
// Whitespace between the delimiters and the path is insignificant.
var tokenPattern = regexp.MustCompile(`<%=\s*([A-Za-z][A-Za-z0-9.]*)\s*%>`)

// fieldValue resolves a dotted token path against the configuration.
// Booleans render as the literal words true/false; everything else renders
// as its string value.
func fieldValue(cfg *config.Config, path string) (string, bool) {
	switch path {
	case "projectName":
		return cfg.ProjectName, true
	case "useTailwind":
		return strconv.FormatBool(cfg.UseTailwind), true
	case "pwa.name":
		return cfg.PWA.Name, true
	case "pwa.shortName":
		return cfg.PWA.ShortName, true
	case "pwa.themeColor":
		return cfg.PWA.ThemeColor, true
	case "pwa.backgroundColor":
		return cfg.PWA.BackgroundColor, true
	case "pwa.displayMode":
		return string(cfg.PWA.DisplayMode), true
	case "pwa.iconPath":
		return cfg.PWA.IconPath, true
	}
	return "", false
}

// interpolateTokens replaces every interpolation token in content with the
// corresponding configuration field. Behavior for tokens whose path has no
// configuration field depends on strict:
//   - lenient (default): the token text passes through to the output verbatim
//   - strict: substitution fails with a Substitution error naming the token
func interpolateTokens(content []byte, cfg *config.Config, strict bool) ([]byte, error) {
	var firstErr error
	substituted := 0
	passedThrough := 0

	result := tokenPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		path := string(tokenPattern.FindSubmatch(match)[1])
		value, ok := fieldValue(cfg, path)
		if !ok {
			passedThrough++
			if strict && firstErr == nil {
				firstErr = newError(ErrSubstitution,
					fmt.Sprintf("unknown token path %q", path),
					"",
					nil)
			}
			// Lenient mode: leave the token in place.
			return match
		}
		substituted++
		return []byte(value)
	})

	if firstErr != nil {
		return nil, firstErr
	}

	debug.Debug("[scaffold] Token substitution: %d replaced, %d passed through", substituted, passedThrough)
	return result, nil
}
