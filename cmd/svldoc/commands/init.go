package commands

import (
	"fmt"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/git"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force   bool   `help:"Overwrite existing configuration file"`
	FromGit bool   `name:"from-git" help:"Take organization and project names from the origin remote"`
	Repo    string `help:"Repository directory used with --from-git" default:"." type:"path"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	var project *config.Project
	if i.FromGit {
		p, err := git.DetectProject(i.Repo)
		if err != nil {
			return err
		}
		project = &config.Project{
			Host:         p.Host,
			Organization: p.Organization,
			Name:         p.Name,
			EditURL:      p.EditURL(),
		}
	}
	return RunInit(g, root.Config, i.Force, project)
}

// RunInit writes the default site definition to configPath.
func RunInit(g *Global, configPath string, force bool, project *config.Project) error {
	out := g.out()
	_, _ = fmt.Fprintln(out, "Initializing svldoc site")
	if project != nil {
		_, _ = fmt.Fprintf(out, "Detected project %s/%s\n", project.Organization, project.Name)
	}
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force, project); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
