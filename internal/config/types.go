package config

// Framework identifies which template tree is scaffolded.
type Framework string

const (
	// FrameworkReact scaffolds a React + Vite project.
	FrameworkReact Framework = "react"
	// FrameworkVue scaffolds a Vue 3 + Vite project.
	FrameworkVue Framework = "vue"
	// FrameworkSvelte scaffolds a Svelte + Vite project.
	FrameworkSvelte Framework = "svelte"
)

// Frameworks returns the supported frameworks in display order.
func Frameworks() []Framework {
	return []Framework{FrameworkReact, FrameworkVue, FrameworkSvelte}
}

// DisplayMode is the web app manifest display mode.
type DisplayMode string

const (
	DisplayStandalone DisplayMode = "standalone"
	DisplayFullscreen DisplayMode = "fullscreen"
	DisplayMinimalUI  DisplayMode = "minimal-ui"
	DisplayBrowser    DisplayMode = "browser"
)

// DisplayModes returns the supported display modes in display order.
func DisplayModes() []DisplayMode {
	return []DisplayMode{DisplayStandalone, DisplayFullscreen, DisplayMinimalUI, DisplayBrowser}
}

// DefaultIconPath is the icon location shared by every template tree.
const DefaultIconPath = "icons/pwa-icon-512.png"

// PWA holds the web app manifest metadata substituted into the templates.
type PWA struct {
	// Name is the full application name shown at install time.
	Name string `yaml:"name"`
	// ShortName is the home-screen label.
	ShortName string `yaml:"shortName"`
	// ThemeColor is a hex color string (e.g. "#317EFB").
	ThemeColor string `yaml:"themeColor"`
	// BackgroundColor is a hex color string for the splash screen.
	BackgroundColor string `yaml:"backgroundColor"`
	// DisplayMode controls how the installed app is presented.
	DisplayMode DisplayMode `yaml:"displayMode"`
	// IconPath is the manifest icon path relative to the public directory.
	IconPath string `yaml:"iconPath"`
}

// Config is the validated, immutable input to the materializer.
// The collector (interactive prompts or an answers file) constructs it once;
// the materializer only reads it.
type Config struct {
	// ProjectName is the destination directory name.
	ProjectName string `yaml:"projectName"`
	// Framework selects the template tree to copy.
	Framework Framework `yaml:"framework"`
	// UseTailwind gates the Tailwind marker snippets and component variants.
	UseTailwind bool `yaml:"useTailwind"`
	// PWA is the manifest metadata.
	PWA PWA `yaml:"pwa"`
}

// ApplyDefaults fills zero-valued optional fields.
func (c *Config) ApplyDefaults() {
	if c.PWA.DisplayMode == "" {
		c.PWA.DisplayMode = DisplayStandalone
	}
	if c.PWA.IconPath == "" {
		c.PWA.IconPath = DefaultIconPath
	}
	if c.PWA.Name == "" {
		c.PWA.Name = c.ProjectName
	}
	if c.PWA.ShortName == "" {
		c.PWA.ShortName = c.PWA.Name
	}
}
