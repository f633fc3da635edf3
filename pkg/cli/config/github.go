package config

import "github.com/urfave/cli/v3"

// GitHub holds GitHub API configuration
type GitHub struct {
	Token string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gh-token",
			Usage:       "GitHub token for pull request lookups",
			Destination: &c.Token,
			Sources:     cli.EnvVars("TAGGE_GITHUB_TOKEN"),
		},
	}
}
