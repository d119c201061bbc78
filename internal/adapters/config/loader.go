// Package config loads the optional bedrock.yaml profile file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

// DefaultFilename is the profile file looked up in the working directory.
const DefaultFilename = "bedrock.yaml"

// Load reads the profile file from the given working directory. A missing
// file is not an error: the profile is entirely optional and the zero value
// changes nothing.
func Load(cwd string) (*Profile, error) {
	path := filepath.Join(cwd, DefaultFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Profile{}, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrProfileParseFailed, err.Error()), "path", path)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProfileParseFailed, err.Error()), "path", path)
	}

	return &profile, nil
}

// Apply folds the profile into a flag-resolved configuration. Only fields the
// flags left unset are filled, so the command line always wins.
func (p *Profile) Apply(c *domain.Config) {
	if c.VenvName == "" && p.Venv != "" {
		c.VenvName = p.Venv
	}
	if c.MPICompiler == "" && p.MPICC != "" {
		c.MPICompiler = p.MPICC
	}
	for pkg, branch := range p.Branches {
		if _, ok := c.BranchOverrides[pkg]; ok {
			continue
		}
		if c.BranchOverrides == nil {
			c.BranchOverrides = make(map[string]string)
		}
		c.BranchOverrides[pkg] = branch
	}
	c.ExtraSystemPackages = append(c.ExtraSystemPackages, p.SystemPackages...)
}
