package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StuartShepherd/datetime-helper/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		printField(out, "datecal", "v"+info.Version)
		printField(out, "Git Commit", info.GitCommit)
		printField(out, "Build Date", info.BuildDate)
		printField(out, "Go Version", info.GoVersion)
		printField(out, "OS/Arch", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
