// Package docusaurus exports the site definition as a docusaurus.config.js
// module together with the label component.
package docusaurus

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/emit"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/highlight"
	"github.com/sviosdi/svldoc/internal/label"
	"github.com/sviosdi/svldoc/internal/logfields"
)

// Format is the export format name of this package.
const Format = "docusaurus"

// Files written by Write.
const (
	ConfigFile    = "docusaurus.config.js"
	ComponentFile = "src/components/Dev.js"
)

const configHeader = `// @ts-check
// Generated by svldoc. Edit svldoc.yaml instead.

/** @type {import('@docusaurus/types').Config} */
const config = `

const configFooter = `;

module.exports = config;
`

// Write renders cfg into outputDir and persists the run report.
func Write(cfg *config.SiteConfig, outputDir string) (*emit.Report, error) {
	return write(cfg, outputDir, time.Now())
}

func write(cfg *config.SiteConfig, outputDir string, now time.Time) (*emit.Report, error) {
	report := emit.NewReport(Format)
	out := emit.NewWriter(outputDir, report)

	err := func() error {
		js, err := Render(cfg, now)
		if err != nil {
			return err
		}
		if err := out.Write(ConfigFile, js); err != nil {
			return err
		}
		return out.Write(ComponentFile, []byte(label.ReactComponent()))
	}()
	if err != nil {
		report.Fail(err)
	}
	for _, item := range cfg.ThemeConfig.Footer.Links {
		for _, link := range item.Items {
			if link.DocID != "" {
				report.Warn("footer link %q: docId %q exported as path %s", link.Label, link.DocID, cfg.DocRoute(link.DocID))
			}
		}
	}
	report.Finish()
	if perr := report.Persist(outputDir); perr != nil {
		slog.Warn("Failed to persist export report", logfields.Error(perr))
	}
	slog.Info("Docusaurus export finished",
		logfields.Path(outputDir),
		logfields.RunID(report.RunID),
		slog.String("summary", report.Summary()))
	return report, err
}

// Render returns the docusaurus.config.js source for cfg. The copyright
// {year} placeholder is expanded with now.
func Render(cfg *config.SiteConfig, now time.Time) ([]byte, error) {
	model, err := build(cfg, now)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(model); err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to encode Docusaurus config").Build()
	}
	buf.Truncate(buf.Len() - 1) // Encode's trailing newline
	buf.WriteString(configFooter)
	return buf.Bytes(), nil
}

func build(cfg *config.SiteConfig, now time.Time) (*siteConfig, error) {
	light, err := cfg.LightTheme()
	if err != nil {
		return nil, err
	}
	lightJSON, err := prismJSON(light)
	if err != nil {
		return nil, err
	}
	var darkJSON json.RawMessage
	if cfg.ThemeConfig.Prism.DarkTheme != "" {
		dark, err := cfg.DarkTheme()
		if err != nil {
			return nil, err
		}
		if darkJSON, err = prismJSON(dark); err != nil {
			return nil, err
		}
	}

	tc := cfg.ThemeConfig
	model := &siteConfig{
		Title:                 cfg.Title,
		Tagline:               cfg.Tagline,
		Favicon:               cfg.Favicon,
		URL:                   cfg.URL,
		BaseURL:               cfg.BaseURL,
		OrganizationName:      cfg.OrganizationName,
		ProjectName:           cfg.ProjectName,
		OnBrokenLinks:         string(cfg.OnBrokenLinks),
		OnBrokenMarkdownLinks: string(cfg.OnBrokenMarkdownLinks),
		I18n:                  i18n{DefaultLocale: cfg.I18n.DefaultLocale, Locales: cfg.I18n.Locales},
		ThemeConfig: themeConfig{
			Prism: prism{Theme: lightJSON, DarkTheme: darkJSON},
			ColorMode: colorMode{
				DefaultMode:               string(tc.ColorMode.DefaultMode),
				DisableSwitch:             tc.ColorMode.DisableSwitch,
				RespectPrefersColorScheme: tc.ColorMode.RespectPrefersColorScheme,
			},
			Navbar: navbar{Title: tc.Navbar.Title, Items: []navbarItem{}},
			Footer: footer{Style: string(tc.Footer.Style), Links: []footerGroup{}, Copyright: cfg.Copyright(now)},
		},
	}

	for _, p := range cfg.Presets {
		model.Presets = append(model.Presets, convertPreset(p))
	}
	if l := tc.Navbar.Logo; l != nil {
		model.ThemeConfig.Navbar.Logo = &logo{Alt: l.Alt, Src: l.Src}
	}
	for _, item := range tc.Navbar.Items {
		model.ThemeConfig.Navbar.Items = append(model.ThemeConfig.Navbar.Items, navbarItem{
			Type:     item.Type,
			DocID:    item.DocID,
			To:       item.To,
			Href:     item.Href,
			Position: string(item.Position),
			Label:    item.Label,
		})
	}
	for _, group := range tc.Footer.Links {
		g := footerGroup{Title: group.Title, Items: []footerLink{}}
		for _, link := range group.Items {
			fl := footerLink{Label: link.Label, To: link.To, Href: link.Href}
			if link.DocID != "" {
				fl.To = cfg.DocRoute(link.DocID)
			}
			g.Items = append(g.Items, fl)
		}
		model.ThemeConfig.Footer.Links = append(model.ThemeConfig.Footer.Links, g)
	}
	return model, nil
}

func convertPreset(p config.Preset) preset {
	opts := presetOptions{Docs: false, Blog: false}
	if d := p.Docs; d != nil {
		opts.Docs = &docsOptions{Path: d.Path, RouteBasePath: d.RouteBasePath, SidebarPath: d.SidebarPath, EditURL: d.EditURL}
	}
	if b := p.Blog; b != nil {
		opts.Blog = &blogOptions{Path: b.Path, RouteBasePath: b.RouteBasePath, ShowReadingTime: b.ShowReadingTime, EditURL: b.EditURL}
	}
	if p.Theme != nil && p.Theme.CustomCSS != "" {
		opts.Theme = &presetTheme{CustomCSS: p.Theme.CustomCSS}
	}
	return preset{Name: p.Name, Options: opts}
}

func prismJSON(t *highlight.Theme) (json.RawMessage, error) {
	data, err := t.PrismJSON()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to encode prism theme").
			WithContext("theme", t.Name).
			Build()
	}
	return data, nil
}
