package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// InstallKind selects where the framework ends up on disk.
type InstallKind string

const (
	// InstallSystem installs into the system site packages (requires sudo).
	InstallSystem InstallKind = "system"
	// InstallUser installs into the invoking user's site packages.
	InstallUser InstallKind = "user"
	// InstallPrefix installs under an explicit prefix directory.
	InstallPrefix InstallKind = "prefix"
	// InstallVenv installs into a dedicated virtual environment. This is the default.
	InstallVenv InstallKind = "venv"
	// InstallDeveloper keeps packages importable from their cloned source trees.
	InstallDeveloper InstallKind = "developer"
)

// DefaultBranch is requested when neither the source URL nor an override names one.
const DefaultBranch = "main"

// Config is the immutable record of one bootstrapper invocation. It is
// resolved once from flags, profile file and environment, then threaded
// explicitly through every component; nothing downstream mutates it or
// reads process-wide state behind its back.
type Config struct {
	// Kind selects the install location.
	Kind InstallKind

	// Prefix is the target directory when Kind is InstallPrefix.
	Prefix string

	// VenvName is the virtual environment directory when Kind is InstallVenv
	// or InstallDeveloper.
	VenvName string

	// Sudo prefixes system package installation with sudo.
	Sudo bool

	// LogFile mirrors all output to the named file when non-empty.
	LogFile string

	// NoSSH disables the authenticated transport for cloning.
	NoSSH bool

	// NoSystemPackages skips native package provisioning entirely.
	NoSystemPackages bool

	// Minimal trims the provisioned package set to the compiler/git/MPI core.
	Minimal bool

	// Verbose raises log verbosity.
	Verbose bool

	// MPICompiler names the MPI C compiler wrapper handed to native builds.
	MPICompiler string

	// BranchOverrides maps package names to branches, from repeated
	// --package-branch name=branch flags. An entry wins over any branch
	// embedded in a manifest URL.
	BranchOverrides map[string]string

	// ForceRebuild rebuilds every tracked package in update mode, changed or not.
	ForceRebuild bool

	// HonourStrataDir accepts an externally built Strata named by STRATA_DIR
	// instead of treating the variable as a stale leftover.
	HonourStrataDir bool

	// StrataDir is the external Strata build location, if honoured.
	StrataDir string

	// StrataConfigureOptions is extra configure input for the Strata build,
	// merged after the computed defaults.
	StrataConfigureOptions string

	// ExtraSystemPackages are provisioned in addition to the platform set,
	// from the profile file.
	ExtraSystemPackages []string
}

// DefaultVenvName is used when no virtual environment name is configured.
const DefaultVenvName = "bedrock-env"

// Branch returns the branch to check out for the named package: an explicit
// override wins, then the branch extracted from the source URL, then
// DefaultBranch.
func (c *Config) Branch(pkg, urlBranch string) string {
	if b, ok := c.BranchOverrides[pkg]; ok {
		return b
	}
	if urlBranch != "" {
		return urlBranch
	}
	return DefaultBranch
}

// BranchOverridden reports whether the package has an explicit branch override.
func (c *Config) BranchOverridden(pkg string) bool {
	_, ok := c.BranchOverrides[pkg]
	return ok
}

// Venv returns the virtual environment root for this configuration. Empty for
// system, user and prefix installs, which use the ambient interpreter.
func (c *Config) Venv() string {
	switch c.Kind {
	case InstallVenv, InstallDeveloper:
		if c.VenvName == "" {
			return DefaultVenvName
		}
		return c.VenvName
	default:
		return ""
	}
}

// Developer reports whether packages should stay importable from source.
func (c *Config) Developer() bool {
	return c.Kind == InstallDeveloper
}

// Validate rejects contradictory configurations before any work starts.
func (c *Config) Validate() error {
	switch c.Kind {
	case InstallSystem, InstallUser, InstallVenv, InstallDeveloper:
	case InstallPrefix:
		if c.Prefix == "" {
			return zerr.Wrap(ErrInvalidConfig, "prefix install requires a prefix directory")
		}
	default:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown install kind"), "kind", string(c.Kind))
	}
	if c.StrataDir != "" && !c.HonourStrataDir {
		return zerr.With(zerr.Wrap(ErrStrataDirConflict, "unset STRATA_DIR or pass --honour-strata-dir"), "strata_dir", c.StrataDir)
	}
	return nil
}

// ParseBranchOverride splits a repeated --package-branch value of the form
// "name=branch".
func ParseBranchOverride(s string) (pkg, branch string, err error) {
	pkg, branch, ok := strings.Cut(s, "=")
	if !ok || pkg == "" || branch == "" {
		return "", "", zerr.With(zerr.Wrap(ErrInvalidBranchOverride, "bad --package-branch value"), "value", s)
	}
	return pkg, branch, nil
}
