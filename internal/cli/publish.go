package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/internal/logging"
	"github.com/alterxyz/gotelegraph/internal/ui/pretty"
)

type publishFlags struct {
	title         string
	returnContent bool
}

func newPublishCommand(root *rootFlags) *cobra.Command {
	flags := &publishFlags{}

	cmd := &cobra.Command{
		Use:   "publish <file.md>",
		Short: "Publish a Markdown file as a new Telegraph page",
		Long: `Publish converts a Markdown file to the Telegraph node format and
creates a new page from it, printing the page URL on success.

The page title defaults to the file name without its extension.

Examples:
  gotelegraph publish notes.md
  gotelegraph publish notes.md --title "Release Notes"
  gotelegraph publish notes.md --author-name "Jane" --author-url https://example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, args[0], root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "page title (defaults to the file name)")
	cmd.Flags().BoolVar(&flags.returnContent, "return-content", false,
		"ask the API to echo the stored content back")

	return cmd
}

func runPublish(cmd *cobra.Command, file string, root *rootFlags, flags *publishFlags) error {
	ctx := cmd.Context()
	logger := logging.Default()

	markdown, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read markdown file: %w", err)
	}

	title := flags.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	client, err := buildClient(ctx, root)
	if err != nil {
		return err
	}

	logger.Debug("publishing page",
		logging.FieldFile, file,
		logging.FieldTitle, title,
	)

	page, err := client.CreatePageMarkdown(ctx, title, string(markdown), nil)
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("published"), styles.URL.Render(page.URL))
	return nil
}
