package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cpanel-mcp",
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main via SetVersion.
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cpanel-mcp version %s\n", rootCmd.Version)
		},
	}
}
