package config

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// projectNamePattern accepts names that are safe as directory names and
	// as npm package names: lowercase-ish alphanumerics, dots, dashes,
	// underscores, never starting with a separator.
	projectNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

	// hexColorPattern accepts #RGB and #RRGGBB.
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Validate checks a fully-populated Config. It returns the first problem
// found as a ConfigError with the offending field set.
func Validate(cfg *Config) error {
	if cfg == nil {
		return NewConfigError(ConfigValidationFailed, "configuration is nil")
	}

	if err := ValidateProjectName(cfg.ProjectName); err != nil {
		return err
	}

	if err := ValidateFramework(cfg.Framework); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.PWA.Name) == "" {
		return NewFieldError("pwa.name", "app name cannot be empty")
	}
	if strings.TrimSpace(cfg.PWA.ShortName) == "" {
		return NewFieldError("pwa.shortName", "short name cannot be empty")
	}

	if err := validateHexColorField("pwa.themeColor", cfg.PWA.ThemeColor); err != nil {
		return err
	}
	if err := validateHexColorField("pwa.backgroundColor", cfg.PWA.BackgroundColor); err != nil {
		return err
	}

	if err := ValidateDisplayMode(cfg.PWA.DisplayMode); err != nil {
		return err
	}

	if cfg.PWA.IconPath == "" {
		return NewFieldError("pwa.iconPath", "icon path cannot be empty")
	}

	return nil
}

// ValidateProjectName checks that name is usable as a directory name.
func ValidateProjectName(name string) error {
	if name == "" {
		return NewFieldError("projectName", "project name cannot be empty")
	}
	if len(name) > 214 {
		return NewFieldError("projectName", "project name is too long (max 214 characters)")
	}
	if !projectNamePattern.MatchString(name) {
		return NewFieldError("projectName",
			fmt.Sprintf("invalid project name %q: use letters, digits, '.', '-' or '_', starting with a letter or digit", name))
	}
	return nil
}

// ValidateFramework checks that fw is one of the supported frameworks.
func ValidateFramework(fw Framework) error {
	for _, known := range Frameworks() {
		if fw == known {
			return nil
		}
	}
	return NewFieldError("framework",
		fmt.Sprintf("unsupported framework %q (supported: react, vue, svelte)", fw))
}

// ValidateDisplayMode checks that mode is one of the manifest display modes.
func ValidateDisplayMode(mode DisplayMode) error {
	for _, known := range DisplayModes() {
		if mode == known {
			return nil
		}
	}
	return NewFieldError("pwa.displayMode",
		fmt.Sprintf("unsupported display mode %q (supported: standalone, fullscreen, minimal-ui, browser)", mode))
}

// ValidateHexColor checks that value is a #RGB or #RRGGBB color string.
func ValidateHexColor(value string) error {
	if !hexColorPattern.MatchString(value) {
		return fmt.Errorf("invalid hex color %q (expected #RGB or #RRGGBB)", value)
	}
	return nil
}

func validateHexColorField(field, value string) error {
	if value == "" {
		return NewFieldError(field, "color cannot be empty")
	}
	if err := ValidateHexColor(value); err != nil {
		return NewFieldError(field, err.Error())
	}
	return nil
}
