package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Repository holds local repository configuration
type Repository struct {
	Path   string
	Remote string
}

// Flags returns CLI flags for repository configuration
func (c *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "path",
			Aliases:     []string{"p"},
			Usage:       "Path to the git repository",
			Value:       ".",
			Destination: &c.Path,
		},
		&cli.StringFlag{
			Name:        "remote",
			Usage:       "Remote name used for fetch and repository detection",
			Value:       "origin",
			Destination: &c.Remote,
			Sources:     cli.EnvVars("TAGGE_REMOTE"),
		},
	}
}

// ResolvePath turns the configured path into an absolute one and verifies it exists
func (c *Repository) ResolvePath() (string, error) {
	path, err := filepath.Abs(c.Path)
	if err != nil {
		return "", goerr.Wrap(err, "cannot resolve repository path", goerr.V("path", c.Path))
	}
	if _, err := os.Stat(path); err != nil {
		return "", goerr.New("path does not exist", goerr.V("path", path))
	}
	return path, nil
}
