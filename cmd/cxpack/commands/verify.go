package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/cxpack/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <package>",
		Short: "Check a package against its recorded digest and its manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			if root == "" {
				configPath, _ := cmd.Flags().GetString("config")
				root = configDir(configPath)
			}

			report, err := c.app.Verify(cmd.Context(), app.VerifyOptions{
				Root:    root,
				Package: args[0],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			status := "unrecorded"
			if report.Recorded {
				status = "recorded"
			}
			_, _ = fmt.Fprintf(out, "%s: ok (%s digest %s, %d items)\n",
				report.Package, status, report.Digest, len(report.Items))
			return nil
		},
	}
	cmd.Flags().String("root", "", "Workspace holding the package history (defaults to the config file's directory)")
	return cmd
}

func configDir(configPath string) string {
	if info, err := os.Stat(configPath); err == nil && info.IsDir() {
		return configPath
	}
	return filepath.Dir(configPath)
}
