package model

import (
	"net/url"
	"strings"
)

// ParseGitHubRemote extracts the owner and repository name from a git remote
// URL. It understands the scp-like form (git@github.com:owner/repo.git) and
// URL forms (ssh://git@github.com/owner/repo.git, https://github.com/owner/repo).
func ParseGitHubRemote(raw string) (owner, repo string, ok bool) {
	s := strings.TrimSuffix(strings.TrimSpace(raw), ".git")
	if s == "" {
		return "", "", false
	}

	var path string
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", "", false
		}
		path = strings.Trim(u.Path, "/")
	} else if host, rest, found := strings.Cut(s, ":"); found && strings.Contains(host, "@") {
		// scp-like syntax: user@host:owner/repo
		path = strings.Trim(rest, "/")
	} else {
		return "", "", false
	}

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
