package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmp-tools/tokenpanel/internal/client"
	"github.com/dmp-tools/tokenpanel/internal/panel"
)

// systemClipboard writes to the OS clipboard
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return panel.ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

func newCreateCmd(a *app) *cobra.Command {
	var (
		expiryName string
		copyToken  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an access token",
		Long: `Create an access token with the chosen lifetime and print it together with
usage examples for every supported language.

Example:
  tokenpanel create --expiry month
  tokenpanel create --expiry permanent --copy --lang en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := newNotifier(cmd.ErrOrStderr())
			opts := []panel.Option{panel.WithLogger(a.logger)}
			if copyToken {
				opts = append(opts, panel.WithClipboard(systemClipboard{}))
			}

			p, err := panel.New(
				panel.Context{Lang: a.cfg.LangValue(), Variant: a.variantValue()},
				client.Requester(c),
				n,
				opts...,
			)
			if err != nil {
				return err
			}

			if expiryName != "" {
				if err := p.SelectExpiryByName(expiryName); err != nil {
					renderView(out, p.View(), terminalWidth(out))
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := submit(ctx, p, n); err != nil {
				if errors.Is(err, panel.ErrNoExpiry) {
					renderView(out, p.View(), terminalWidth(out))
				}
				return markReported(err, n)
			}

			renderView(out, p.View(), terminalWidth(out))

			if copyToken {
				return markReported(p.Copy(), n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expiryName, "expiry", "e", "", "Token lifetime, see 'tokenpanel options'")
	cmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the token to the clipboard")

	return cmd
}

// submit runs the request behind a spinner when the notifier writes to a
// terminal. The first notice stops the spinner.
func submit(ctx context.Context, p *panel.Panel, n *notifier) error {
	if !isTerminal(n.w) {
		return p.Submit(ctx)
	}

	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(n.w))
	s.Suffix = " " + p.View().CreateLabel + "..."
	n.start(s)
	defer n.stop()
	return p.Submit(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
