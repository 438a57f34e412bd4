package git

import (
	"net/url"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
)

// DefaultRemote is the remote read by DetectProject.
const DefaultRemote = "origin"

// Project is the hosting coordinates of a repository.
type Project struct {
	Host         string
	Organization string // owner, group or namespace path
	Name         string
	Branch       string // checked out branch, empty when HEAD is detached
}

// EditURL returns the web URL under which files of branch can be edited,
// for example https://gitlab.com/sviosdi/svl-doc/-/edit/main/. Only GitHub
// style and GitLab style hosts are recognized; others get the GitHub layout.
func (p *Project) EditURL() string {
	if p.Branch == "" {
		return ""
	}
	base := "https://" + p.Host + "/" + p.Organization + "/" + p.Name
	if strings.Contains(p.Host, "gitlab") {
		return base + "/-/edit/" + p.Branch + "/"
	}
	return base + "/edit/" + p.Branch + "/"
}

// DetectProject opens the repository containing dir and parses the URL of its
// origin remote.
func DetectProject(dir string) (*Project, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, classifyGitError(err, "open", dir)
	}
	remote, err := repo.Remote(DefaultRemote)
	if err != nil {
		return nil, classifyGitError(err, "remote", dir)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, errors.GitError("remote has no URL").
			WithContext("remote", DefaultRemote).
			WithContext("path", dir).
			Build()
	}

	project, err := ParseRemoteURL(urls[0])
	if err != nil {
		return nil, err
	}
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		project.Branch = head.Name().Short()
	}
	return project, nil
}

// ParseRemoteURL understands https://host/org/project(.git),
// ssh://git@host/org/project(.git) and the scp-like git@host:org/project(.git).
// Nested GitLab groups end up in Organization.
func ParseRemoteURL(raw string) (*Project, error) {
	var host, p string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, errors.GitError("invalid remote URL").WithCause(err).WithContext("url", raw).Build()
		}
		host, p = u.Hostname(), u.Path
	} else if at := strings.Index(raw, "@"); at >= 0 {
		hostPath := raw[at+1:]
		colon := strings.Index(hostPath, ":")
		if colon < 0 {
			return nil, errors.GitError("invalid remote URL").WithContext("url", raw).Build()
		}
		host, p = hostPath[:colon], hostPath[colon+1:]
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	slash := strings.LastIndex(p, "/")
	if host == "" || slash <= 0 || slash == len(p)-1 {
		return nil, errors.GitError("remote URL does not name an organization and project").
			WithContext("url", raw).
			Build()
	}
	return &Project{Host: host, Organization: p[:slash], Name: p[slash+1:]}, nil
}
