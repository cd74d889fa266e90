package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/guide"
)

func newGuideCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Print the API usage examples",
		Long: `Print the usage examples shown after a token is issued, with the token
header of the configured variant.

Example:
  tokenpanel guide
  tokenpanel guide --format html --variant legacy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := guide.Compose(a.variantValue().HeaderName)

			switch format {
			case "markdown", "md":
				fmt.Fprintln(cmd.OutOrStdout(), doc)
			case "html":
				html, err := guide.RenderHTML(doc)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), html)
			default:
				return fmt.Errorf("unknown format %q: want markdown or html", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "Output format: markdown or html")
	return cmd
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the selectable token lifetimes",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.variantValue()
			lang := a.cfg.LangValue()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "variant %s (header %s, field %s)\n", v.Name, v.HeaderName, v.RequestField)
			for _, o := range v.Options {
				hours := fmt.Sprintf("%dh", o.Hours)
				if o.Hours == 0 {
					hours = fmt.Sprintf("0 (stored as %dh)", expiry.PermanentHours)
				}
				fmt.Fprintf(out, "  %-10s %-12s %s\n", o.Name, o.Label(lang), hours)
			}
			return nil
		},
	}
}
