// Package cli provides the Cobra command structure for gotelegraph.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
	token      string
	tokenPath  string
	baseURL    string
	authorName string
	authorURL  string
}

// NewRootCommand creates the root gotelegraph command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gotelegraph",
		Short: "Publish Markdown to Telegraph",
		Long: `gotelegraph publishes Markdown documents as Telegraph pages.

It converts Markdown to the Telegraph node format, creates and edits hosted
pages, and manages the access token lifecycle: when no token is supplied or
stored, a new account is created automatically and its token is saved for
later runs.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", "", "telegraph access token")
	rootCmd.PersistentFlags().StringVar(&flags.tokenPath, "token-path", "",
		"path to the access token file")
	rootCmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "",
		"telegraph API endpoint")
	rootCmd.PersistentFlags().StringVar(&flags.authorName, "author-name", "",
		"default author name for new pages")
	rootCmd.PersistentFlags().StringVar(&flags.authorURL, "author-url", "",
		"default author URL for new pages")

	// Add subcommands.
	rootCmd.AddCommand(newPublishCommand(flags))
	rootCmd.AddCommand(newEditCommand(flags))
	rootCmd.AddCommand(newPageCommand(flags))
	rootCmd.AddCommand(newAccountCommand(flags))
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
