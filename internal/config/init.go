package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
)

// Project identifies the hosting organization and project of a site.
type Project struct {
	Host         string // git host, e.g. gitlab.com; empty means GitHub
	Organization string
	Name         string
	EditURL      string // base URL for "edit this page" links of docs and blog
}

const initHeader = "# svldoc site definition, generated %s.\n" +
	"# ${VAR} references are expanded from the environment and from .env/.env.local.\n"

// Init writes the default site definition to path. An existing file is only
// replaced when force is set. A non-nil project overrides organizationName and
// projectName, and the url is derived from the GitHub or GitLab Pages domain.
// Its EditURL, when set, becomes the editUrl of the docs and blog plugins.
func Init(path string, force bool, project *Project) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to stat config file").
			WithContext("path", path).
			Build()
	}

	cfg := Default()
	if project != nil {
		applyProject(cfg, *project)
	}

	body, err := Marshal(cfg)
	if err != nil {
		return err
	}
	header := fmt.Sprintf(initHeader, time.Now().UTC().Format(time.DateOnly))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create config directory").
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, append([]byte(header), body...), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}

// pagesURL returns the Pages domain of an organization: <org>.gitlab.io for
// GitLab hosts and <org>.github.io otherwise. Nested GitLab groups are served
// from their top-level group.
func pagesURL(host, organization string) string {
	top, _, _ := strings.Cut(organization, "/")
	if strings.Contains(strings.ToLower(host), "gitlab") {
		return "https://" + top + ".gitlab.io"
	}
	return "https://" + top + ".github.io"
}

func applyProject(cfg *SiteConfig, p Project) {
	if p.Organization != "" {
		cfg.OrganizationName = p.Organization
		cfg.URL = pagesURL(p.Host, p.Organization)
	}
	if p.Name != "" {
		cfg.ProjectName = p.Name
		cfg.BaseURL = "/" + p.Name + "/"
	}
	if p.EditURL != "" {
		if d := cfg.Docs(); d != nil {
			d.EditURL = p.EditURL
		}
		if b := cfg.Blog(); b != nil {
			b.EditURL = p.EditURL
		}
	}
}
