package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing installation in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return c.app.Update(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Bool("force", false, "Rebuild every tracked package, changed or not")
	cmd.Flags().String("venv", "", "Virtual environment name the installation used")
	cmd.Flags().Bool("dev", false, "Developer installation: packages stay importable from their source trees")
	cmd.Flags().Bool("no-ssh", false, "Clone over https only, without trying ssh first")
	cmd.Flags().Bool("honour-strata-dir", false, "Accept an externally built Strata named by STRATA_DIR")
	cmd.Flags().StringArray("package-branch", nil, "Override a package's branch as name=branch (repeatable)")
	cmd.Flags().String("mpicc", "", "MPI C compiler wrapper for native builds")

	return cmd
}
