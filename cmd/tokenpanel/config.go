package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tokenpanel configuration",
		Long:  `View the tokenpanel client configuration.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", a.cfgPath)
			if _, err := os.Stat(a.cfgPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "\nNo configuration found. Run 'tokenpanel login --username NAME' to set up.")
			}
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Long:  `Display the effective configuration in YAML. The session token is masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := *a.cfg
			shown.SessionToken = maskSecret(shown.SessionToken)

			data, err := yaml.Marshal(&shown)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	return configCmd
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "********"
}
