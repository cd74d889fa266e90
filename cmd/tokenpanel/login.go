package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmp-tools/tokenpanel/internal/cliconfig"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		baseURL  string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the management platform",
		Long: `Log in with a platform account and store the session token in the config
file. The password is read from the terminal when --password is not given.

Example:
  tokenpanel login --base-url https://dmp.example.com --username admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL != "" {
				a.cfg.BaseURL = strings.TrimRight(baseURL, "/")
			}
			if password == "" {
				p, err := readPassword(cmd)
				if err != nil {
					return err
				}
				password = p
			}

			c, err := a.newClient()
			if err != nil {
				return err
			}

			session, err := c.Login(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			a.cfg.SessionToken = session
			if err := cliconfig.Save(a.cfgPath, a.cfg); err != nil {
				return err
			}

			a.logger.Info("Logged in to %s as %s", a.cfg.BaseURL, username)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s, session saved to %s\n", a.cfg.BaseURL, a.cfgPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Platform address, e.g. https://dmp.example.com")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no --password given and stdin is not a terminal")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}
