package hugo

import (
	"bytes"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/highlight"
	"github.com/sviosdi/svldoc/internal/label"
)

// Files written next to hugo.yaml.
const (
	syntaxCSSLight = "css/syntax.css"
	syntaxCSSDark  = "css/syntax-dark.css"
	ShortcodeFile  = "layouts/shortcodes/dev.html"
)

func (g *Generator) generateSyntaxCSS() error {
	light, err := g.cfg.LightTheme()
	if err != nil {
		return err
	}
	dark, err := g.cfg.DarkTheme()
	if err != nil {
		return err
	}
	if g.cfg.ThemeConfig.Prism.DarkTheme == "" {
		g.report.Warn("no dark syntax theme configured; %s is used for both color modes", light.Name)
	}

	for _, f := range []struct {
		rel   string
		theme *highlight.Theme
	}{
		{"assets/" + syntaxCSSLight, light},
		{"assets/" + syntaxCSSDark, dark},
	} {
		var buf bytes.Buffer
		if err := highlight.WriteCSS(&buf, f.theme); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to render syntax stylesheet").
				WithContext("theme", f.theme.Name).
				Build()
		}
		if err := g.out.Write(f.rel, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateShortcodes() error {
	return g.out.Write(ShortcodeFile, []byte(label.Shortcode()))
}
