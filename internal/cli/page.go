package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/internal/ui/pretty"
	"github.com/alterxyz/gotelegraph/pkg/dom"
	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

func newPageCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Inspect Telegraph pages",
	}

	cmd.AddCommand(newPageGetCommand(root))
	cmd.AddCommand(newPageListCommand(root))
	cmd.AddCommand(newPageViewsCommand(root))
	cmd.AddCommand(newPageDeleteCommand(root))

	return cmd
}

func newPageGetCommand(root *rootFlags) *cobra.Command {
	var withContent bool

	cmd := &cobra.Command{
		Use:   "get <path-or-url>",
		Short: "Show a page's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			page, err := client.GetPage(ctx, args[0], withContent)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			fmt.Fprint(cmd.OutOrStdout(), pretty.FormatPage(styles, page))

			if withContent {
				wire, err := dom.Marshal(page.Content)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(wire))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withContent, "content", false, "also print the page content as wire-format JSON")

	return cmd
}

func newPageListCommand(root *rootFlags) *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the account's pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			list, err := client.GetPageList(ctx, offset, limit)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			table := pretty.NewPageTable(styles, pretty.TermWidth())
			fmt.Fprint(cmd.OutOrStdout(), table.Format(list))
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "sequential number of the first page to return")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of pages to return (1-200)")

	return cmd
}

func newPageViewsCommand(root *rootFlags) *cobra.Command {
	var q telegraph.ViewsQuery

	cmd := &cobra.Command{
		Use:   "views <path-or-url>",
		Short: "Show a page's view counter",
		Long: `Show the number of views for a page, optionally scoped to a period.
A more precise period flag requires all less precise ones: --day needs
--month and --year, and so on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			views, err := client.GetViews(ctx, args[0], q)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), views.Views)
			return nil
		},
	}

	cmd.Flags().IntVar(&q.Year, "year", 0, "year to count views for")
	cmd.Flags().IntVar(&q.Month, "month", 0, "month to count views for")
	cmd.Flags().IntVar(&q.Day, "day", 0, "day to count views for")
	cmd.Flags().IntVar(&q.Hour, "hour", 0, "hour to count views for")

	return cmd
}

func newPageDeleteCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <path-or-url>",
		Short: "Overwrite a page with tombstone content",
		Long: `Delete overwrites a page with placeholder content and a "404" title.
The Telegraph API has no real delete operation; this is the closest it
offers. The overwrite is verified by reading the page back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			if err := client.DeletePage(ctx, args[0]); err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("deleted"), args[0])
			return nil
		},
	}

	return cmd
}
