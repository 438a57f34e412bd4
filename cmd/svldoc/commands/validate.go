package commands

import (
	"fmt"

	"github.com/sviosdi/svldoc/internal/config"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, found, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return err
	}
	if !found {
		// The built-in definition has no file to catch it at load time.
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	out := g.out()
	source := root.Config
	if !found {
		source = "built-in definition"
	}
	_, _ = fmt.Fprintf(out, "%s is valid\n", source)
	_, _ = fmt.Fprintf(out, "  title:   %s\n", cfg.Title)
	_, _ = fmt.Fprintf(out, "  site:    %s\n", cfg.SiteURL())
	_, _ = fmt.Fprintf(out, "  locales: %v (default %s)\n", cfg.I18n.Locales, cfg.DefaultLocale())
	return nil
}
