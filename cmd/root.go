package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the cpanel-mcp application
var rootCmd = &cobra.Command{
	Use:   "cpanel-mcp",
	Short: "MCP server for cPanel email and DNS management",
	Long: `cpanel-mcp exposes cPanel email account, forwarder and DNS zone
management as Model Context Protocol (MCP) tools for AI assistants.

It talks to the cPanel UAPI for mailbox operations and to the WHM API
for DNS zone records, authenticating with an API token.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "cpanel-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
