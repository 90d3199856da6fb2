package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/progbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <path>",
		Short: "Build the program at path",
		Long: "Build the program at path, relative to the anchor root " +
			"($CARGO_MANIFEST_DIR unless --root is given) or absolute.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			configPath, _ := cmd.Flags().GetString("config")

			return c.app.BuildProgram(cmd.Context(), args[0], app.BuildOptions{
				AnchorRoot: root,
				ConfigPath: configPath,
			})
		},
	}
	cmd.Flags().StringP("root", "r", "", "Anchor root for relative program paths")
	cmd.Flags().StringP("config", "c", "", "Toolchain config file (default: <root>/progbuild.yaml when present)")
	return cmd
}
