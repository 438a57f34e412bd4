package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/highlight"
)

// ThemeCmd groups the syntax theme commands.
type ThemeCmd struct {
	List    ThemeListCmd    `cmd:"" help:"List built-in and custom syntax themes"`
	CSS     ThemeCSSCmd     `cmd:"" name:"css" help:"Print the class-based stylesheet of a theme"`
	Preview ThemePreviewCmd `cmd:"" help:"Highlight a file to HTML with a theme"`
}

// ThemeListCmd implements 'theme list'.
type ThemeListCmd struct{}

func (l *ThemeListCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	prism := cfg.ThemeConfig.Prism
	out := g.out()
	line := func(name, origin string) {
		marker := ""
		switch name {
		case prism.Theme:
			marker = " (light)"
		case prism.DarkTheme:
			marker = " (dark)"
		}
		_, _ = fmt.Fprintf(out, "%-12s %s%s\n", name, origin, marker)
	}
	for _, t := range prism.CustomThemes {
		line(t.Name, "custom")
	}
	for _, name := range highlight.Names() {
		line(name, "built-in")
	}
	return nil
}

// ThemeCSSCmd implements 'theme css'.
type ThemeCSSCmd struct {
	Name string `arg:"" optional:"" help:"Theme name; defaults to the configured prism theme"`
	Dark bool   `help:"Use the configured dark theme when no name is given"`
}

func (c *ThemeCSSCmd) Run(g *Global, root *CLI) error {
	theme, err := selectTheme(root, c.Name, c.Dark)
	if err != nil {
		return err
	}
	if err := highlight.WriteCSS(g.out(), theme); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to render theme stylesheet").
			WithContext("theme", theme.Name).
			Build()
	}
	return nil
}

// ThemePreviewCmd implements 'theme preview'.
type ThemePreviewCmd struct {
	Name string `arg:"" optional:"" help:"Theme name; defaults to the configured prism theme"`
	Dark bool   `help:"Use the configured dark theme when no name is given"`
	Lang string `short:"l" default:"go" help:"Language of the snippet"`
	File string `short:"f" required:"" help:"File to highlight, - for stdin"`
}

func (p *ThemePreviewCmd) Run(g *Global, root *CLI) error {
	theme, err := selectTheme(root, p.Name, p.Dark)
	if err != nil {
		return err
	}
	code, err := readSource(p.File)
	if err != nil {
		return err
	}
	if err := highlight.Preview(g.out(), theme, p.Lang, string(code)); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to highlight snippet").
			WithContext("theme", theme.Name).
			WithContext("lang", p.Lang).
			Build()
	}
	return nil
}

func selectTheme(root *CLI, name string, dark bool) (*highlight.Theme, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if dark {
			return cfg.DarkTheme()
		}
		return cfg.LightTheme()
	}
	if t, ok := highlight.Resolve(name, cfg.ThemeConfig.Prism.CustomThemes); ok {
		return t, nil
	}
	return nil, unknownTheme(name)
}

func unknownTheme(name string) error {
	return errors.NotFoundError("unknown syntax theme").
		WithContext("theme", name).
		WithContext("builtin", highlight.Names()).
		Build()
}

func readSource(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read snippet").
			WithContext("path", path).
			Build()
	}
	return data, nil
}
