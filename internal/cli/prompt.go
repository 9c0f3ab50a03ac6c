package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"

	"github.com/pwa-tools/pwagen/internal/config"
)

// PromptForConfig interactively collects a Configuration. initialName
// pre-fills the project name prompt (from the positional CLI argument) and
// may be empty. parentDir is used for the advisory collision check; the
// materializer re-checks and fails closed regardless.
func PromptForConfig(initialName, parentDir string) (*config.Config, error) {
	cfg := &config.Config{}

	// Project name
	namePrompt := &survey.Input{
		Message: "Project name:",
		Default: initialName,
		Help:    "Directory name for the generated project",
	}
	nameValidator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if err := config.ValidateProjectName(str); err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(parentDir, str)); err == nil {
			return fmt.Errorf("directory %q already exists", str)
		}
		return nil
	}
	if err := survey.AskOne(namePrompt, &cfg.ProjectName, survey.WithValidator(nameValidator)); err != nil {
		return nil, err
	}

	// Framework
	frameworkOptions := make([]string, 0, len(config.Frameworks()))
	for _, fw := range config.Frameworks() {
		frameworkOptions = append(frameworkOptions, string(fw))
	}
	var framework string
	if err := survey.AskOne(&survey.Select{
		Message: "Framework:",
		Options: frameworkOptions,
		Default: string(config.FrameworkReact),
	}, &framework); err != nil {
		return nil, err
	}
	cfg.Framework = config.Framework(framework)

	// Styling
	if err := survey.AskOne(&survey.Confirm{
		Message: "Use Tailwind CSS?",
		Default: false,
	}, &cfg.UseTailwind); err != nil {
		return nil, err
	}

	// PWA metadata
	if err := survey.AskOne(&survey.Input{
		Message: "App name:",
		Default: cfg.ProjectName,
		Help:    "Full application name shown at install time",
	}, &cfg.PWA.Name, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Short name:",
		Default: cfg.PWA.Name,
		Help:    "Home-screen label (keep it under ~12 characters)",
	}, &cfg.PWA.ShortName, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Theme color:",
		Default: "#317EFB",
		Help:    "Hex color for the browser UI (e.g. #317EFB)",
	}, &cfg.PWA.ThemeColor, survey.WithValidator(hexColorValidator)); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Background color:",
		Default: "#FFFFFF",
		Help:    "Hex color for the splash screen",
	}, &cfg.PWA.BackgroundColor, survey.WithValidator(hexColorValidator)); err != nil {
		return nil, err
	}

	displayOptions := make([]string, 0, len(config.DisplayModes()))
	for _, mode := range config.DisplayModes() {
		displayOptions = append(displayOptions, string(mode))
	}
	var displayMode string
	if err := survey.AskOne(&survey.Select{
		Message: "Display mode:",
		Options: displayOptions,
		Default: string(config.DisplayStandalone),
	}, &displayMode); err != nil {
		return nil, err
	}
	cfg.PWA.DisplayMode = config.DisplayMode(displayMode)

	cfg.PWA.IconPath = config.DefaultIconPath
	cfg.ApplyDefaults()

	return cfg, nil
}

// hexColorValidator is a survey validator for hex color strings.
func hexColorValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	return config.ValidateHexColor(str)
}
