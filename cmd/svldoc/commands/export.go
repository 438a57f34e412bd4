package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/docusaurus"
	"github.com/sviosdi/svldoc/internal/emit"
	"github.com/sviosdi/svldoc/internal/hugo"
	"github.com/sviosdi/svldoc/internal/watch"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format string `short:"f" default:"hugo" help:"Target generator (hugo or docusaurus)" enum:"hugo,docusaurus"`
	Output string `short:"o" default:"." help:"Site root the files are written to" type:"path"`
	Watch  bool   `short:"w" help:"Export again whenever the site definition or its .env files change"`

	Debounce time.Duration `default:"500ms" help:"Quiet period before a watched change triggers an export"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := e.export(ctx, g, cfg); err != nil {
		return err
	}
	if !e.Watch {
		return nil
	}

	w, err := watch.New(root.Config, func(ctx context.Context, cfg *config.SiteConfig) error {
		return e.export(ctx, g, cfg)
	})
	if err != nil {
		return err
	}
	return w.WithDebounce(e.Debounce).Run(ctx)
}

func (e *ExportCmd) export(ctx context.Context, g *Global, cfg *config.SiteConfig) error {
	report, err := Export(ctx, cfg, e.Format, e.Output)
	if report != nil {
		printReport(g, report)
	}
	return err
}

// Export writes the configuration files of the given format below outDir.
func Export(ctx context.Context, cfg *config.SiteConfig, format, outDir string) (*emit.Report, error) {
	switch format {
	case docusaurus.Format:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return docusaurus.Write(cfg, outDir)
	default:
		return hugo.NewGenerator(cfg, outDir).Generate(ctx)
	}
}

func printReport(g *Global, r *emit.Report) {
	out := g.out()
	_, _ = fmt.Fprintf(out, "%s export: %s\n", r.Format, r.Summary())
	for _, f := range r.Files {
		_, _ = fmt.Fprintf(out, "  wrote %s\n", f)
	}
	for _, w := range r.Warnings {
		_, _ = fmt.Fprintf(out, "  warning: %s\n", w)
	}
}
