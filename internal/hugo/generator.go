package hugo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/emit"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/logfields"
)

// Format is the export format name of this package.
const Format = "hugo"

// StageName identifies a generator stage.
type StageName string

const (
	StagePrepareOutput  StageName = "prepare_output"
	StageGenerateConfig StageName = "generate_config"
	StageSyntaxCSS      StageName = "syntax_css"
	StageShortcodes     StageName = "shortcodes"
)

type stage struct {
	name StageName
	fn   func(*Generator) error
}

var stages = []stage{
	{StagePrepareOutput, (*Generator).prepareOutput},
	{StageGenerateConfig, (*Generator).generateConfig},
	{StageSyntaxCSS, (*Generator).generateSyntaxCSS},
	{StageShortcodes, (*Generator).generateShortcodes},
}

// Generator writes the Hugo files for one site definition.
type Generator struct {
	cfg    *config.SiteConfig
	out    *emit.Writer
	report *emit.Report
	now    func() time.Time
}

// NewGenerator creates a generator writing below outputDir.
func NewGenerator(cfg *config.SiteConfig, outputDir string) *Generator {
	report := emit.NewReport(Format)
	return &Generator{
		cfg:    cfg,
		out:    emit.NewWriter(outputDir, report),
		report: report,
		now:    time.Now,
	}
}

// Generate runs every stage in order and persists the run report, also when
// a stage fails. It stops between stages when ctx is canceled.
func (g *Generator) Generate(ctx context.Context) (*emit.Report, error) {
	err := g.run(ctx)
	if err != nil {
		g.report.Fail(err)
	}
	g.report.Finish()
	if perr := g.report.Persist(g.out.Root()); perr != nil {
		slog.Warn("Failed to persist export report", logfields.Error(perr))
	}
	slog.Info("Hugo export finished",
		logfields.Path(g.out.Root()),
		logfields.RunID(g.report.RunID),
		slog.String("summary", g.report.Summary()))
	return g.report, err
}

func (g *Generator) run(ctx context.Context) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "export canceled").
				WithContext("stage", string(st.name)).
				Build()
		}
		start := time.Now()
		err := st.fn(g)
		g.report.StageDurations[string(st.name)] = time.Since(start)
		if err != nil {
			return err
		}
		slog.Debug("Stage complete", slog.String("stage", string(st.name)))
	}
	return nil
}

func (g *Generator) prepareOutput() error {
	if err := os.MkdirAll(g.out.Root(), emit.DirMode); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", g.out.Root()).
			Build()
	}
	return nil
}
