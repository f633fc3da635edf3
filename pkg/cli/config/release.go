package config

import "github.com/urfave/cli/v3"

// Release holds flags shaping a single release invocation
type Release struct {
	Tag     string
	Suffix  string
	UseSHA  bool
	UsePR   bool
	DryRun  bool
	NoFetch bool
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tag",
			Aliases:     []string{"t"},
			Usage:       "Override the auto-generated tag name",
			Destination: &c.Tag,
		},
		&cli.StringFlag{
			Name:        "suffix",
			Usage:       "Extra suffix for the tag name",
			Destination: &c.Suffix,
		},
		&cli.BoolFlag{
			Name:        "use-sha",
			Aliases:     []string{"s"},
			Usage:       "Prefix changelog lines with abbreviated commit hashes",
			Destination: &c.UseSHA,
		},
		&cli.BoolFlag{
			Name:        "use-pr",
			Aliases:     []string{"r"},
			Usage:       "Annotate changelog lines with pull request numbers",
			Destination: &c.UsePR,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"d"},
			Usage:       "Print the tag command instead of creating a tag",
			Destination: &c.DryRun,
		},
		&cli.BoolFlag{
			Name:        "no-fetch",
			Usage:       "Skip fetching tags and branches from the remote",
			Destination: &c.NoFetch,
		},
	}
}
