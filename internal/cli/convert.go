package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alterxyz/gotelegraph/pkg/convert"
	"github.com/alterxyz/gotelegraph/pkg/dom"
)

func newConvertCommand() *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "convert [file.md]",
		Short: "Convert Markdown to Telegraph wire-format JSON",
		Long: `Convert a Markdown file (or stdin when no file is given) to the
Telegraph node format and print the wire-format JSON. No network calls
are made.

Examples:
  gotelegraph convert notes.md
  cat notes.md | gotelegraph convert --indent`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 {
				src, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read markdown file: %w", err)
				}
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			nodes, err := convert.Convert(src)
			if err != nil {
				return err
			}

			wire, err := dom.Marshal(nodes)
			if err != nil {
				return err
			}

			if indent {
				var pretty []json.RawMessage
				if err := json.Unmarshal(wire, &pretty); err != nil {
					return err
				}
				wire, err = json.MarshalIndent(pretty, "", "  ")
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(wire))
			return nil
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "pretty-print the JSON output")

	return cmd
}
