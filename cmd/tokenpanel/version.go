package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmp-tools/tokenpanel/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var checkServer bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tokenpanel %s\n", version.Info())

			if !checkServer {
				return nil
			}

			c, err := a.newClient()
			if err != nil {
				return err
			}
			info, err := c.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to query server version: %w", err)
			}

			fmt.Fprintf(out, "server     %s (%s)\n", info.Version, info.Platform)
			if version.IsUpdateAvailable(version.Version, info.Version) {
				fmt.Fprintf(out, "A newer version is available: %s\n", info.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkServer, "server", false, "Also report the server version")
	return cmd
}
