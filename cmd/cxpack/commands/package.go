package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/cxpack/internal/app"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Build the provisioning package declared in cxpack.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			root, _ := cmd.Flags().GetString("root")
			destDir, _ := cmd.Flags().GetString("dest-dir")
			destFile, _ := cmd.Flags().GetString("dest-file")
			skipCleanUp, _ := cmd.Flags().GetBool("skip-cleanup")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			dest, err := c.app.Run(cmd.Context(), configPath, app.RunOptions{
				Root:         root,
				DestDir:      destDir,
				DestFileName: destFile,
				SkipCleanUp:  skipCleanUp,
				Parallelism:  parallelism,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}
	cmd.Flags().String("root", "", "Workspace root for relative paths (defaults to the config file's directory)")
	cmd.Flags().String("dest-dir", "", "Directory the package is written to")
	cmd.Flags().String("dest-file", "", "File name of the package")
	cmd.Flags().Bool("skip-cleanup", false, "Keep the staging workspace for debugging")
	cmd.Flags().IntP("parallelism", "j", 0, "Maximum number of items built at once (defaults to the number of CPUs)")
	return cmd
}
