package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flexxoo/website/internal/config"
)

var envFiles []string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flexxoo",
	Short: "Flexxoo marketing website",
	Long: `Serves the Flexxoo marketing website and the tools around it.

The website captures demo requests and contact messages, plays the product
tour and serves the legal pages. Configuration comes from environment
variables, optionally seeded from .env files.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv(envFiles...)
	},
}

// NewRootCommand creates and returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env", ".env.local"},
		"dotenv files to load; later files override earlier ones")
}
