package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/internal/ui/pretty"
	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

type editFlags struct {
	title   string
	prepend bool
	append  bool
}

func newEditCommand(root *rootFlags) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   "edit <path-or-url> <file.md>",
		Short: "Edit an existing Telegraph page from a Markdown file",
		Long: `Edit replaces the content of an existing page with the converted
Markdown file. With --prepend or --append, the converted content is spliced
onto the page's current content instead of replacing it.

An empty --title keeps the page's current title.

Examples:
  gotelegraph edit Page-title-07-12 notes.md
  gotelegraph edit https://telegra.ph/Page-title-07-12 notes.md --title "v2"
  gotelegraph edit Page-title-07-12 changelog.md --append`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], args[1], root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "new page title (empty keeps the current one)")
	cmd.Flags().BoolVar(&flags.prepend, "prepend", false, "splice content before the current page content")
	cmd.Flags().BoolVar(&flags.append, "append", false, "splice content after the current page content")
	cmd.MarkFlagsMutuallyExclusive("prepend", "append")

	return cmd
}

func runEdit(cmd *cobra.Command, pathOrURL, file string, root *rootFlags, flags *editFlags) error {
	ctx := cmd.Context()

	markdown, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read markdown file: %w", err)
	}

	client, err := buildClient(ctx, root)
	if err != nil {
		return err
	}

	var page *telegraph.Page
	switch {
	case flags.prepend:
		page, err = client.AppendMarkdown(ctx, pathOrURL, string(markdown), telegraph.Front, nil)
	case flags.append:
		page, err = client.AppendMarkdown(ctx, pathOrURL, string(markdown), telegraph.Back, nil)
	default:
		page, err = client.EditPageMarkdown(ctx, pathOrURL, flags.title, string(markdown), nil)
	}
	if err != nil {
		var apiErr *telegraph.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("edit failed: %w", apiErr)
		}
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("edited"), styles.URL.Render(page.URL))
	return nil
}
