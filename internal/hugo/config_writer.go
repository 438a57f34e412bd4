package hugo

import (
	"log/slog"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/logfields"
)

// ConfigFile is the Hugo configuration written by the generator.
const ConfigFile = "hugo.yaml"

// menu weights keep navbar order; right-aligned items sort after left ones.
const (
	leftWeightBase  = 10
	rightWeightBase = 100
)

func (g *Generator) generateConfig() error {
	root, err := g.buildConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to marshal Hugo config").Build()
	}
	if err := g.out.Write(ConfigFile, data); err != nil {
		return err
	}
	slog.Info("Generated Hugo configuration", logfields.File(ConfigFile))
	return nil
}

// buildConfig assembles the hugo.yaml document.
func (g *Generator) buildConfig() (map[string]any, error) {
	cfg := g.cfg
	languages, err := g.languages()
	if err != nil {
		return nil, err
	}

	root := map[string]any{
		"title":                  cfg.Title,
		"baseURL":                cfg.SiteURL(),
		"languageCode":           cfg.DefaultLocale(),
		"defaultContentLanguage": cfg.DefaultLocale(),
		"languages":              languages,
		"markup": map[string]any{
			"highlight": map[string]any{
				"noClasses": false,
				"tabWidth":  4,
			},
		},
		"params": g.params(),
	}
	if menu := g.mainMenu(); len(menu) > 0 {
		root["menu"] = map[string]any{"main": menu}
	}
	return root, nil
}

// languages lists every locale with its native display name, default first.
func (g *Generator) languages() (map[string]any, error) {
	out := map[string]any{}
	weight := 2
	for _, loc := range g.cfg.I18n.Locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "invalid locale").
				WithContext("locale", loc).
				Build()
		}
		entry := map[string]any{
			"languageName": display.Self.Name(tag),
			"languageCode": tag.String(),
		}
		if loc == g.cfg.DefaultLocale() {
			entry["weight"] = 1
		} else {
			entry["weight"] = weight
			weight++
		}
		out[loc] = entry
		slog.Debug("Hugo language", logfields.Locale(loc), slog.String("name", display.Self.Name(tag)))
	}
	return out, nil
}

func (g *Generator) mainMenu() []map[string]any {
	items := g.cfg.ThemeConfig.Navbar.Items
	menu := make([]map[string]any, 0, len(items))
	for i, item := range items {
		base := leftWeightBase
		if item.Position == config.NavbarRight {
			base = rightWeightBase
		}
		entry := map[string]any{
			"name":   item.Label,
			"weight": base + i,
			"params": map[string]any{"position": string(item.Position)},
		}
		g.applyTarget(entry, item.Target)
		menu = append(menu, entry)
	}
	return menu
}

// applyTarget sets pageRef for internal targets and url for external ones.
func (g *Generator) applyTarget(entry map[string]any, t config.Target) {
	switch t.Kind() {
	case config.TargetDoc:
		entry["pageRef"] = g.cfg.DocRoute(t.DocID)
	case config.TargetPath:
		entry["pageRef"] = t.To
	case config.TargetExternal:
		entry["url"] = t.Href
	}
}

func (g *Generator) params() map[string]any {
	cfg := g.cfg
	tc := cfg.ThemeConfig
	params := map[string]any{
		"description":  cfg.Tagline,
		"organization": cfg.OrganizationName,
		"project":      cfg.ProjectName,
		"colorMode": map[string]any{
			"defaultMode":               string(tc.ColorMode.DefaultMode),
			"disableSwitch":             tc.ColorMode.DisableSwitch,
			"respectPrefersColorScheme": tc.ColorMode.RespectPrefersColorScheme,
		},
		"syntaxCss": []string{syntaxCSSLight, syntaxCSSDark},
		"footer":    g.footer(),
	}
	if cfg.Favicon != "" {
		params["favicon"] = cfg.Favicon
	}
	if css := cfg.CustomCSS(); css != "" {
		params["customCss"] = []string{strings.TrimPrefix(css, "./")}
	}
	navbar := map[string]any{}
	if tc.Navbar.Title != "" {
		navbar["title"] = tc.Navbar.Title
	}
	if logo := tc.Navbar.Logo; logo != nil {
		navbar["logo"] = map[string]any{"src": logo.Src, "alt": logo.Alt}
	}
	if len(navbar) > 0 {
		params["navbar"] = navbar
	}
	if d := cfg.Docs(); d != nil && d.EditURL != "" {
		params["editURL"] = d.EditURL
	}
	if b := cfg.Blog(); b != nil {
		params["blog"] = map[string]any{"showReadingTime": b.ShowReadingTime}
	}
	return params
}

func (g *Generator) footer() map[string]any {
	footer := g.cfg.ThemeConfig.Footer
	out := map[string]any{
		"style":     string(footer.Style),
		"copyright": g.cfg.Copyright(g.now()),
	}
	if len(footer.Links) > 0 {
		groups := make([]map[string]any, 0, len(footer.Links))
		for _, group := range footer.Links {
			items := make([]map[string]any, 0, len(group.Items))
			for _, link := range group.Items {
				entry := map[string]any{"name": link.Label}
				g.applyTarget(entry, link.Target)
				items = append(items, entry)
			}
			groups = append(groups, map[string]any{"title": group.Title, "items": items})
		}
		out["links"] = groups
	}
	return out
}
