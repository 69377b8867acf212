package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/smallstring/pkg/core/version"
)

var (
	Version   = version.CLI
	GitCommit = version.Commit()
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s v%s\n", titleStyle.Render("smallstring"), Version)
		fmt.Fprintf(out, "  smallstr:   %s\n", version.ComponentVersion("smallstr"))
		fmt.Fprintf(out, "  bufpool:    %s\n", version.ComponentVersion("bufpool"))
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
