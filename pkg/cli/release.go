package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/tagge/tagge/pkg/cli/config"
	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/model"
	"github.com/tagge/tagge/pkg/domain/types"
	githubinfra "github.com/tagge/tagge/pkg/infra/github"
	"github.com/tagge/tagge/pkg/infra/gitrepo"
	"github.com/tagge/tagge/pkg/infra/signer"
	"github.com/tagge/tagge/pkg/usecase"
)

func cmdRelease() *cli.Command {
	var (
		repoCfg    config.Repository
		githubCfg  config.GitHub
		releaseCfg config.Release
	)

	flags := append(repoCfg.Flags(), githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)

	return &cli.Command{
		Name:      "release",
		Aliases:   []string{"r"},
		Usage:     "Resolve the latest tag, show the changelog, and optionally create the next tag",
		ArgsUsage: "[patch|minor|major]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if c.Args().Len() > 1 {
				return goerr.New("at most one bump kind may be given", goerr.V("args", c.Args().Slice()))
			}
			bump, ok := model.ParseBumpKind(c.Args().First())
			if !ok {
				return goerr.New("unknown bump kind, expected patch, minor, or major",
					goerr.V("arg", c.Args().First()))
			}

			path, err := repoCfg.ResolvePath()
			if err != nil {
				return err
			}

			source, err := gitrepo.Open(path)
			if err != nil {
				return err
			}

			fileCfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}

			remote := repoCfg.Remote
			if !c.IsSet("remote") && fileCfg.Remote != "" {
				remote = fileCfg.Remote
			}

			var ghClient interfaces.GitHubClient
			if releaseCfg.UsePR {
				if githubCfg.Token == "" {
					return goerr.Wrap(types.ErrMissingToken,
						"--use-pr needs --gh-token or TAGGE_GITHUB_TOKEN")
				}
				ghClient, err = githubinfra.NewClient(githubCfg.Token)
				if err != nil {
					return err
				}
			}

			logger.Debug("starting release run",
				"path", path,
				"remote", remote,
				"bump", string(bump),
				"dry_run", releaseCfg.DryRun,
			)

			uc := usecase.NewRelease(source,
				usecase.WithGitHubClient(ghClient),
				usecase.WithTagSigner(signer.NewGitCLI(path)),
				usecase.WithConfirmer(newConfirmer(os.Stdin, os.Stdout)),
				usecase.WithOutput(os.Stdout),
			)

			req := &model.ReleaseRequest{
				Bump:            bump,
				TagOverride:     releaseCfg.Tag,
				Suffix:          releaseCfg.Suffix,
				UseSHA:          releaseCfg.UseSHA,
				UsePR:           releaseCfg.UsePR,
				DryRun:          releaseCfg.DryRun,
				NoFetch:         releaseCfg.NoFetch,
				Remote:          remote,
				Owner:           fileCfg.GitHub.Owner,
				Repo:            fileCfg.GitHub.Repo,
				ReleaseBranches: fileCfg.ReleaseBranches,
			}

			return uc.Run(ctx, req)
		},
	}
}
