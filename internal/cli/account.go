package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/internal/ui/pretty"
)

func newAccountCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the Telegraph account",
	}

	cmd.AddCommand(newAccountInfoCommand(root))
	cmd.AddCommand(newAccountEditCommand(root))
	cmd.AddCommand(newAccountRevokeCommand(root))

	return cmd
}

func newAccountInfoCommand(root *rootFlags) *cobra.Command {
	var showAuthURL bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show account information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			account, err := client.GetAccountInfo(ctx)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			fmt.Fprint(cmd.OutOrStdout(), pretty.FormatAccount(styles, account))

			if showAuthURL {
				authURL, err := client.AuthorizationURL(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), styles.URL.Render(authURL))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAuthURL, "auth-url", false,
		"also print a browser login URL for the account")

	return cmd
}

func newAccountEditCommand(root *rootFlags) *cobra.Command {
	var shortName, authorName, authorURL string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update account information",
		Long: `Update the account's short name, author name, or author URL.
Only the provided flags are changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			account, err := client.EditAccountInfo(ctx, shortName, authorName, authorURL)
			if err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			fmt.Fprint(cmd.OutOrStdout(), pretty.FormatAccount(styles, account))
			return nil
		},
	}

	cmd.Flags().StringVar(&shortName, "short-name", "", "new account short name")
	cmd.Flags().StringVar(&authorName, "name", "", "new default author name")
	cmd.Flags().StringVar(&authorURL, "url", "", "new default author URL")

	return cmd
}

func newAccountRevokeCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the access token and store a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := buildClient(ctx, root)
			if err != nil {
				return err
			}

			if _, err := client.RevokeAccessToken(ctx); err != nil {
				return err
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(root.color, cmd.OutOrStdout()))
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render("token revoked and replaced"))
			return nil
		},
	}

	return cmd
}
