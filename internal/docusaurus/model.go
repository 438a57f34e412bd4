package docusaurus

import "encoding/json"

// siteConfig mirrors the docusaurus.config.js object. Field order follows the
// order Docusaurus documents them in.
type siteConfig struct {
	Title                 string      `json:"title"`
	Tagline               string      `json:"tagline,omitempty"`
	Favicon               string      `json:"favicon,omitempty"`
	URL                   string      `json:"url"`
	BaseURL               string      `json:"baseUrl"`
	OrganizationName      string      `json:"organizationName,omitempty"`
	ProjectName           string      `json:"projectName,omitempty"`
	OnBrokenLinks         string      `json:"onBrokenLinks"`
	OnBrokenMarkdownLinks string      `json:"onBrokenMarkdownLinks"`
	I18n                  i18n        `json:"i18n"`
	Presets               []preset    `json:"presets"`
	ThemeConfig           themeConfig `json:"themeConfig"`
}

type i18n struct {
	DefaultLocale string   `json:"defaultLocale"`
	Locales       []string `json:"locales"`
}

// preset encodes as the ["name", {options}] tuple Docusaurus expects.
type preset struct {
	Name    string
	Options presetOptions
}

func (p preset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Options})
}

type presetOptions struct {
	Docs  any          `json:"docs"` // *docsOptions or false
	Blog  any          `json:"blog"` // *blogOptions or false
	Theme *presetTheme `json:"theme,omitempty"`
}

type docsOptions struct {
	Path          string `json:"path"`
	RouteBasePath string `json:"routeBasePath"`
	SidebarPath   string `json:"sidebarPath,omitempty"`
	EditURL       string `json:"editUrl,omitempty"`
}

type blogOptions struct {
	Path            string `json:"path"`
	RouteBasePath   string `json:"routeBasePath"`
	ShowReadingTime bool   `json:"showReadingTime"`
	EditURL         string `json:"editUrl,omitempty"`
}

type presetTheme struct {
	CustomCSS string `json:"customCss,omitempty"`
}

type themeConfig struct {
	Prism     prism     `json:"prism"`
	ColorMode colorMode `json:"colorMode"`
	Navbar    navbar    `json:"navbar"`
	Footer    footer    `json:"footer"`
}

type prism struct {
	Theme     json.RawMessage `json:"theme"`
	DarkTheme json.RawMessage `json:"darkTheme,omitempty"`
}

type colorMode struct {
	DefaultMode               string `json:"defaultMode"`
	DisableSwitch             bool   `json:"disableSwitch"`
	RespectPrefersColorScheme bool   `json:"respectPrefersColorScheme"`
}

type navbar struct {
	Title string       `json:"title,omitempty"`
	Logo  *logo        `json:"logo,omitempty"`
	Items []navbarItem `json:"items"`
}

type logo struct {
	Alt string `json:"alt,omitempty"`
	Src string `json:"src"`
}

type navbarItem struct {
	Type     string `json:"type,omitempty"`
	DocID    string `json:"docId,omitempty"`
	To       string `json:"to,omitempty"`
	Href     string `json:"href,omitempty"`
	Position string `json:"position"`
	Label    string `json:"label"`
}

type footer struct {
	Style     string        `json:"style"`
	Links     []footerGroup `json:"links"`
	Copyright string        `json:"copyright,omitempty"`
}

type footerGroup struct {
	Title string       `json:"title"`
	Items []footerLink `json:"items"`
}

type footerLink struct {
	Label string `json:"label"`
	To    string `json:"to,omitempty"`
	Href  string `json:"href,omitempty"`
}
