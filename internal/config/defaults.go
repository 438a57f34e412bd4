package config

import "github.com/sviosdi/svldoc/internal/highlight"

// Preset and plugin defaults.
const (
	PresetClassic = "classic"

	DefaultDocsPath  = "docs"
	DefaultDocsRoute = "docs"
	DefaultBlogPath  = "blog"
	DefaultBlogRoute = "blog"
	DefaultLocale    = "en"
)

// Default returns the SavvyLite site definition. Each call returns a fresh value.
func Default() *SiteConfig {
	return &SiteConfig{
		Title:                 "SavvyLite",
		Tagline:               "Documentation",
		URL:                   "https://sviosdi.github.io",
		BaseURL:               "/svl-doc/",
		Favicon:               "img/favicon.svg",
		OrganizationName:      "sviosdi",
		ProjectName:           "svl-doc",
		OnBrokenLinks:         BrokenLinkThrow,
		OnBrokenMarkdownLinks: BrokenLinkWarn,
		I18n: I18nConfig{
			DefaultLocale: "fr",
			Locales:       []string{"fr"},
		},
		Presets: []Preset{{
			Name: PresetClassic,
			Docs: &DocsOptions{
				Path:          DefaultDocsPath,
				RouteBasePath: DefaultDocsRoute,
				SidebarPath:   "./sidebars.js",
			},
			Blog: &BlogOptions{
				Path:            DefaultBlogPath,
				RouteBasePath:   DefaultBlogRoute,
				ShowReadingTime: false,
			},
			Theme: &PresetTheme{CustomCSS: "./src/css/custom.css"},
		}},
		ThemeConfig: ThemeConfig{
			Prism: PrismConfig{
				Theme:     highlight.QtCreator,
				DarkTheme: highlight.Dracula,
			},
			ColorMode: ColorModeConfig{
				DefaultMode:               ColorModeLight,
				DisableSwitch:             true,
				RespectPrefersColorScheme: true,
			},
			Navbar: NavbarConfig{
				Title: "SavvyLite",
				Logo:  &Logo{Alt: "SavvyLiteLogo", Src: "img/logo_svl.svg"},
				Items: []NavbarItem{
					{Type: "doc", Label: "Documentation", Position: NavbarLeft, Target: Target{DocID: "intro"}},
					{Label: "Blog", Position: NavbarLeft, Target: Target{To: "/blog"}},
					{Label: "GitLab", Position: NavbarRight, Target: Target{Href: "https://gitlab.com/sviosdi/signals_slots"}},
				},
			},
			Footer: FooterConfig{
				Style:     FooterStyleDark,
				Copyright: "Copyright © {year} SavvyLite.",
			},
		},
	}
}

// applyDefaults fills fields a loaded file may omit.
func applyDefaults(cfg *SiteConfig) {
	if cfg.OnBrokenLinks == "" {
		cfg.OnBrokenLinks = BrokenLinkThrow
	}
	if cfg.OnBrokenMarkdownLinks == "" {
		cfg.OnBrokenMarkdownLinks = BrokenLinkWarn
	}

	if cfg.I18n.DefaultLocale == "" && len(cfg.I18n.Locales) == 0 {
		cfg.I18n.DefaultLocale = DefaultLocale
	}
	if len(cfg.I18n.Locales) == 0 {
		cfg.I18n.Locales = []string{cfg.I18n.DefaultLocale}
	}

	if len(cfg.Presets) == 0 {
		cfg.Presets = []Preset{{Name: PresetClassic, Docs: &DocsOptions{}, Blog: &BlogOptions{}}}
	}
	for i := range cfg.Presets {
		p := &cfg.Presets[i]
		if p.Docs != nil {
			if p.Docs.Path == "" {
				p.Docs.Path = DefaultDocsPath
			}
			if p.Docs.RouteBasePath == "" {
				p.Docs.RouteBasePath = DefaultDocsRoute
			}
		}
		if p.Blog != nil {
			if p.Blog.Path == "" {
				p.Blog.Path = DefaultBlogPath
			}
			if p.Blog.RouteBasePath == "" {
				p.Blog.RouteBasePath = DefaultBlogRoute
			}
		}
	}

	prism := &cfg.ThemeConfig.Prism
	if prism.Theme == "" {
		prism.Theme = highlight.GitHub
	}
	if cfg.ThemeConfig.ColorMode.DefaultMode == "" {
		cfg.ThemeConfig.ColorMode.DefaultMode = ColorModeLight
	}
	if cfg.ThemeConfig.Footer.Style == "" {
		cfg.ThemeConfig.Footer.Style = FooterStyleLight
	}
	for i := range cfg.ThemeConfig.Navbar.Items {
		item := &cfg.ThemeConfig.Navbar.Items[i]
		if item.Position == "" {
			item.Position = NavbarLeft
		}
		if item.Type == "" && item.DocID != "" {
			item.Type = "doc"
		}
	}
}

// normalize canonicalizes recognized enum spellings and aliases. Unrecognized
// values are left untouched so validation can report them verbatim.
func normalize(cfg *SiteConfig) {
	if v, ok := brokenLinkNormalizer.Lookup(string(cfg.OnBrokenLinks)); ok {
		cfg.OnBrokenLinks = v
	}
	if v, ok := brokenLinkNormalizer.Lookup(string(cfg.OnBrokenMarkdownLinks)); ok {
		cfg.OnBrokenMarkdownLinks = v
	}
	if v, ok := colorModeNormalizer.Lookup(string(cfg.ThemeConfig.ColorMode.DefaultMode)); ok {
		cfg.ThemeConfig.ColorMode.DefaultMode = v
	}
	if v, ok := footerStyleNormalizer.Lookup(string(cfg.ThemeConfig.Footer.Style)); ok {
		cfg.ThemeConfig.Footer.Style = v
	}
	for i := range cfg.ThemeConfig.Navbar.Items {
		item := &cfg.ThemeConfig.Navbar.Items[i]
		if v, ok := navbarPositionNormalizer.Lookup(string(item.Position)); ok {
			item.Position = v
		}
	}
}
