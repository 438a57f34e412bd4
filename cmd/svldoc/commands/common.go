// Package commands holds the svldoc command line commands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sviosdi/svldoc/internal/config"
)

// Global is shared state bound to every command's Run method.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// NewGlobal returns the state used by the real binary.
func NewGlobal() *Global {
	return &Global{Logger: slog.Default(), Out: os.Stdout}
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition and global flags.
type CLI struct {
	Config    string           `short:"c" help:"Site definition file" default:"svldoc.yaml" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text or json)" default:"text" enum:"text,json"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate   ValidateCmd   `cmd:"" help:"Validate the site definition"`
	Init       InitCmd       `cmd:"" help:"Write a default site definition"`
	Export     ExportCmd     `cmd:"" help:"Generate Hugo or Docusaurus configuration"`
	CheckLinks CheckLinksCmd `cmd:"" name:"check-links" help:"Check navbar, footer and markdown links against the docs"`
	Theme      ThemeCmd      `cmd:"" help:"Inspect syntax color themes"`
	Label      LabelCmd      `cmd:"" help:"Print the dev label element"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(newLogger(os.Stderr, c.LogFormat, c.Verbose))
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// loadConfig loads the site definition named by --config, falling back to
// the built-in definition when the file does not exist.
func loadConfig(root *CLI) (*config.SiteConfig, error) {
	cfg, _, err := config.LoadOrDefault(root.Config)
	return cfg, err
}
