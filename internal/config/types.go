// Package config defines the SavvyLite site configuration: the record handed to
// the documentation framework at build time.
package config

import "github.com/sviosdi/svldoc/internal/highlight"

// SiteConfig is the complete site definition. It is built once (from Default or
// Load), validated once, and treated as read-only afterwards.
type SiteConfig struct {
	Title                 string           `yaml:"title"`
	Tagline               string           `yaml:"tagline,omitempty"`
	URL                   string           `yaml:"url"`     // absolute origin, e.g. https://sviosdi.github.io
	BaseURL               string           `yaml:"baseUrl"` // path prefix, e.g. /svl-doc/
	Favicon               string           `yaml:"favicon,omitempty"`
	OrganizationName      string           `yaml:"organizationName,omitempty"`
	ProjectName           string           `yaml:"projectName,omitempty"`
	OnBrokenLinks         BrokenLinkPolicy `yaml:"onBrokenLinks,omitempty"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `yaml:"onBrokenMarkdownLinks,omitempty"`
	I18n                  I18nConfig       `yaml:"i18n"`
	Presets               []Preset         `yaml:"presets"`
	ThemeConfig           ThemeConfig      `yaml:"themeConfig"`
}

// I18nConfig lists the served locales; DefaultLocale must be one of them.
type I18nConfig struct {
	DefaultLocale string   `yaml:"defaultLocale"`
	Locales       []string `yaml:"locales"`
}

// Preset is a named bundle of docs, blog and theme options.
type Preset struct {
	Name  string       `yaml:"name"`
	Docs  *DocsOptions `yaml:"docs,omitempty"`
	Blog  *BlogOptions `yaml:"blog,omitempty"`
	Theme *PresetTheme `yaml:"theme,omitempty"`
}

// DocsOptions configures the documentation plugin of a preset.
type DocsOptions struct {
	Path          string `yaml:"path,omitempty"`
	RouteBasePath string `yaml:"routeBasePath,omitempty"`
	SidebarPath   string `yaml:"sidebarPath,omitempty"`
	EditURL       string `yaml:"editUrl,omitempty"`
}

// BlogOptions configures the blog plugin of a preset.
type BlogOptions struct {
	Path            string `yaml:"path,omitempty"`
	RouteBasePath   string `yaml:"routeBasePath,omitempty"`
	ShowReadingTime bool   `yaml:"showReadingTime"`
	EditURL         string `yaml:"editUrl,omitempty"`
}

// PresetTheme holds preset-level theme options.
type PresetTheme struct {
	CustomCSS string `yaml:"customCss,omitempty"`
}

// ThemeConfig groups the visual settings of the site.
type ThemeConfig struct {
	Prism     PrismConfig     `yaml:"prism"`
	ColorMode ColorModeConfig `yaml:"colorMode"`
	Navbar    NavbarConfig    `yaml:"navbar"`
	Footer    FooterConfig    `yaml:"footer"`
}

// PrismConfig names the code color themes. Names resolve against CustomThemes
// first, then against the built-in themes of package highlight.
type PrismConfig struct {
	Theme        string            `yaml:"theme"`
	DarkTheme    string            `yaml:"darkTheme,omitempty"`
	CustomThemes []highlight.Theme `yaml:"customThemes,omitempty"`
}

// ColorModeConfig is the light/dark policy of the site.
type ColorModeConfig struct {
	DefaultMode               ColorMode `yaml:"defaultMode"`
	DisableSwitch             bool      `yaml:"disableSwitch"`
	RespectPrefersColorScheme bool      `yaml:"respectPrefersColorScheme"`
}

// NavbarConfig describes the top navigation bar.
type NavbarConfig struct {
	Title string       `yaml:"title,omitempty"`
	Logo  *Logo        `yaml:"logo,omitempty"`
	Items []NavbarItem `yaml:"items,omitempty"`
}

// Logo is an image shown in the navbar.
type Logo struct {
	Alt string `yaml:"alt,omitempty"`
	Src string `yaml:"src"`
}

// Target is where a navbar item or footer link points. Exactly one field is set.
type Target struct {
	DocID string `yaml:"docId,omitempty"` // internal document id
	To    string `yaml:"to,omitempty"`    // internal path, relative to baseUrl
	Href  string `yaml:"href,omitempty"`  // external absolute URL
}

// NavbarItem is one entry of the navbar.
type NavbarItem struct {
	Type     string         `yaml:"type,omitempty"` // "doc" when DocID is set
	Label    string         `yaml:"label"`
	Position NavbarPosition `yaml:"position,omitempty"`
	Target   `yaml:",inline"`
}

// FooterConfig describes the page footer.
type FooterConfig struct {
	Style     FooterStyle       `yaml:"style"`
	Links     []FooterLinkGroup `yaml:"links,omitempty"`
	Copyright string            `yaml:"copyright,omitempty"` // {year} expands to the current year
}

// FooterLinkGroup is a titled column of footer links.
type FooterLinkGroup struct {
	Title string       `yaml:"title"`
	Items []FooterLink `yaml:"items"`
}

// FooterLink is one footer entry.
type FooterLink struct {
	Label  string `yaml:"label"`
	Target `yaml:",inline"`
}
