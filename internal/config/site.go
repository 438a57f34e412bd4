package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/highlight"
)

// SiteURL returns the public root of the site: URL joined with BaseURL.
func (c *SiteConfig) SiteURL() string {
	return strings.TrimRight(c.URL, "/") + c.BaseURL
}

// Preset returns the preset called name.
func (c *SiteConfig) Preset(name string) (*Preset, bool) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i], true
		}
	}
	return nil, false
}

// Docs returns the docs options of the classic preset, if enabled.
func (c *SiteConfig) Docs() *DocsOptions {
	if p, ok := c.Preset(PresetClassic); ok {
		return p.Docs
	}
	return nil
}

// Blog returns the blog options of the classic preset, if enabled.
func (c *SiteConfig) Blog() *BlogOptions {
	if p, ok := c.Preset(PresetClassic); ok {
		return p.Blog
	}
	return nil
}

// CustomCSS returns the custom stylesheet path of the classic preset.
func (c *SiteConfig) CustomCSS() string {
	if p, ok := c.Preset(PresetClassic); ok && p.Theme != nil {
		return p.Theme.CustomCSS
	}
	return ""
}

// DocsRoute returns the site-relative route of the docs plugin, e.g. "/docs".
func (c *SiteConfig) DocsRoute() string {
	if d := c.Docs(); d != nil {
		return routeOf(d.RouteBasePath)
	}
	return ""
}

// BlogRoute returns the site-relative route of the blog plugin, e.g. "/blog".
func (c *SiteConfig) BlogRoute() string {
	if b := c.Blog(); b != nil {
		return routeOf(b.RouteBasePath)
	}
	return ""
}

// DocRoute returns the site-relative route of the document with the given id.
func (c *SiteConfig) DocRoute(id string) string {
	base := strings.TrimRight(c.DocsRoute(), "/")
	return base + "/" + strings.TrimLeft(id, "/")
}

func routeOf(base string) string {
	return "/" + strings.Trim(base, "/")
}

// Copyright expands the {year} placeholder of the footer copyright.
func (c *SiteConfig) Copyright(now time.Time) string {
	return strings.ReplaceAll(c.ThemeConfig.Footer.Copyright, "{year}", strconv.Itoa(now.Year()))
}

// LightTheme resolves the prism theme.
func (c *SiteConfig) LightTheme() (*highlight.Theme, error) {
	return c.resolveTheme(c.ThemeConfig.Prism.Theme)
}

// DarkTheme resolves the prism dark theme; it falls back to the light theme when unset.
func (c *SiteConfig) DarkTheme() (*highlight.Theme, error) {
	if c.ThemeConfig.Prism.DarkTheme == "" {
		return c.LightTheme()
	}
	return c.resolveTheme(c.ThemeConfig.Prism.DarkTheme)
}

func (c *SiteConfig) resolveTheme(name string) (*highlight.Theme, error) {
	if t, ok := highlight.Resolve(name, c.ThemeConfig.Prism.CustomThemes); ok {
		return t, nil
	}
	return nil, errors.NotFoundError("unknown syntax theme").
		WithContext("theme", name).
		WithContext("builtin", highlight.Names()).
		Build()
}

// DefaultLocale returns the locale served at the site root.
func (c *SiteConfig) DefaultLocale() string {
	return c.I18n.DefaultLocale
}
