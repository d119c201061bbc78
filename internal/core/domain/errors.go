package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned when flag resolution produces a contradictory configuration.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidBranchOverride is returned when a --package-branch value is not of the form name=branch.
	ErrInvalidBranchOverride = zerr.New("branch override must be of the form name=branch")

	// ErrStrataDirConflict is returned when STRATA_DIR is set in the environment
	// but the invocation did not pass --honour-strata-dir. Refusing to guess
	// which Strata build the caller meant beats silently linking the wrong one.
	ErrStrataDirConflict = zerr.New("STRATA_DIR is set but --honour-strata-dir was not given")

	// ErrMissingTool is returned when a required executable (git, compiler suite,
	// Python interpreter) cannot be found after provisioning.
	ErrMissingTool = zerr.New("required tool not found")

	// ErrMalformedSource is returned when a manifest line cannot be parsed into
	// a package descriptor.
	ErrMalformedSource = zerr.New("malformed source URL")

	// ErrCloneFailed is returned when a repository cannot be cloned over any transport.
	ErrCloneFailed = zerr.New("failed to clone repository")

	// ErrPackageDirExists is returned in install mode when a package's target
	// directory is already present. Install mode never adopts an existing tree.
	ErrPackageDirExists = zerr.New("package directory already exists")

	// ErrManifestRead is returned when a dependency manifest cannot be read.
	ErrManifestRead = zerr.New("failed to read dependency manifest")

	// ErrInstallFailed is returned when installing a package or its library
	// dependencies fails.
	ErrInstallFailed = zerr.New("package installation failed")

	// ErrBuildFailed is returned when the Strata configure/make build fails.
	ErrBuildFailed = zerr.New("native build failed")

	// ErrPurgeNotConverging is returned when repeated uninstall passes keep
	// finding installed copies of a package. It is distinct from an ordinary
	// subprocess failure: it signals a corrupted installer state that retrying
	// will not fix.
	ErrPurgeNotConverging = zerr.New("uninstall loop did not converge")

	// ErrVenvCreateFailed is returned when the virtual environment cannot be created.
	ErrVenvCreateFailed = zerr.New("failed to create virtual environment")

	// ErrStateReadFailed is returned when the install state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read install state")

	// ErrStateWriteFailed is returned when the install state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write install state")

	// ErrNotInstalled is returned by update mode when no install state exists
	// in the working directory.
	ErrNotInstalled = zerr.New("no install state found, run install first")

	// ErrProfileParseFailed is returned when bedrock.yaml cannot be parsed.
	ErrProfileParseFailed = zerr.New("failed to parse profile file")

	// ErrUpdateScriptFailed is returned when the generated update script cannot
	// be written.
	ErrUpdateScriptFailed = zerr.New("failed to write update script")
)
