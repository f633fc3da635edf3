package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the optional per-repository config file
const FileName = ".tagge.toml"

// File holds repository-local defaults loaded from .tagge.toml in the
// repository root. A missing file yields the zero value.
type File struct {
	Remote          string   `toml:"remote"`
	ReleaseBranches []string `toml:"release_branches"`

	GitHub struct {
		Owner string `toml:"owner"`
		Repo  string `toml:"repo"`
	} `toml:"github"`
}

// LoadFile reads .tagge.toml from the repository root if present
func LoadFile(repoPath string) (*File, error) {
	var cfg File

	raw, err := os.ReadFile(filepath.Join(repoPath, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", repoPath))
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("file", FileName))
	}
	return &cfg, nil
}
