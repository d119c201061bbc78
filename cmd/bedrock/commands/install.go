package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Bootstrap a fresh Bedrock installation in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return c.app.Install(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Bool("system", false, "Install into the system site packages (requires sudo)")
	cmd.Flags().Bool("user", false, "Install into the invoking user's site packages")
	cmd.Flags().String("prefix", "", "Install under the given prefix directory")
	cmd.Flags().String("venv", "", "Install into a virtual environment with the given name")
	cmd.Flags().Bool("dev", false, "Developer install: keep packages importable from their source trees")
	cmd.MarkFlagsMutuallyExclusive("system", "user", "prefix", "venv", "dev")

	cmd.Flags().Bool("sudo", false, "Prefix system package installation with sudo")
	cmd.Flags().Bool("no-ssh", false, "Clone over https only, without trying ssh first")
	cmd.Flags().Bool("no-package-manager", false, "Skip system package provisioning entirely")
	cmd.Flags().Bool("minimal", false, "Provision only the compiler/git/MPI core packages")
	cmd.Flags().StringArray("package-branch", nil, "Override a package's branch as name=branch (repeatable)")
	cmd.Flags().String("mpicc", "", "MPI C compiler wrapper for native builds")
	cmd.Flags().Bool("honour-strata-dir", false, "Accept an externally built Strata named by STRATA_DIR")

	return cmd
}

// resolveConfig turns the command's flags and the relevant environment
// variables into the immutable configuration everything downstream consumes.
// Nothing after this point reads the process environment.
func resolveConfig(cmd *cobra.Command) (*domain.Config, error) {
	flags := cmd.Flags()

	cfg := &domain.Config{
		Kind:                   domain.InstallVenv,
		StrataDir:              os.Getenv("STRATA_DIR"),
		StrataConfigureOptions: os.Getenv("STRATA_CONFIGURE_OPTIONS"),
	}

	switch {
	case boolFlag(cmd, "system"):
		cfg.Kind = domain.InstallSystem
	case boolFlag(cmd, "user"):
		cfg.Kind = domain.InstallUser
	case stringFlag(cmd, "prefix") != "":
		cfg.Kind = domain.InstallPrefix
		cfg.Prefix = stringFlag(cmd, "prefix")
	case boolFlag(cmd, "dev"):
		cfg.Kind = domain.InstallDeveloper
	}
	cfg.VenvName = stringFlag(cmd, "venv")

	cfg.Sudo = boolFlag(cmd, "sudo")
	cfg.NoSSH = boolFlag(cmd, "no-ssh")
	cfg.NoSystemPackages = boolFlag(cmd, "no-package-manager")
	cfg.Minimal = boolFlag(cmd, "minimal")
	cfg.MPICompiler = stringFlag(cmd, "mpicc")
	cfg.HonourStrataDir = boolFlag(cmd, "honour-strata-dir")
	cfg.ForceRebuild = boolFlag(cmd, "force")
	cfg.LogFile = stringFlag(cmd, "log")
	cfg.Verbose = boolFlag(cmd, "verbose")

	if overrides, err := flags.GetStringArray("package-branch"); err == nil {
		for _, value := range overrides {
			pkg, branch, err := domain.ParseBranchOverride(value)
			if err != nil {
				return nil, err
			}
			if cfg.BranchOverrides == nil {
				cfg.BranchOverrides = make(map[string]string)
			}
			cfg.BranchOverrides[pkg] = branch
		}
	}

	return cfg, nil
}

// boolFlag reads a flag that may live on the command or its parents; flags
// the command does not define read as false.
func boolFlag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func stringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
