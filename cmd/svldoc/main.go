package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/sviosdi/svldoc/cmd/svldoc/commands"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("svldoc"),
		kong.Description("Manage the SavvyLite site definition and export it to Hugo or Docusaurus."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	g := commands.NewGlobal()
	if err := parser.Run(g, &cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, g.Logger)
		os.Exit(adapter.HandleError(err))
	}
}
