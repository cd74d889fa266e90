package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmp-tools/tokenpanel/internal/cliconfig"
	"github.com/dmp-tools/tokenpanel/internal/client"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
)

// app carries the state shared by every command of one invocation
type app struct {
	cfgPath string
	lang    string
	variant string

	cfg    *cliconfig.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tokenpanel",
		Short: "Issue access tokens for the management platform",
		Long: `tokenpanel requests long-lived access tokens from the management platform
and prints examples showing how to call the platform API with them.

Example:
  tokenpanel login --username admin
  tokenpanel create --expiry month --copy`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.logger.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (default: ~/.tokenpanel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.lang, "lang", "", "Display language: zh or en (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.variant, "variant", "", "Contract variant: dmp or legacy (overrides config)")

	rootCmd.AddCommand(newCreateCmd(a))
	rootCmd.AddCommand(newGuideCmd(a))
	rootCmd.AddCommand(newOptionsCmd(a))
	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// init loads the config file and sets up logging. Flags win over the file.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgPath == "" {
		path, err := cliconfig.DefaultPath()
		if err != nil {
			return err
		}
		a.cfgPath = path
	}

	cfg, err := cliconfig.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.lang != "" {
		cfg.Lang = string(i18n.ParseLang(a.lang))
	}
	if a.variant != "" {
		if _, err := expiry.Lookup(a.variant); err != nil {
			return err
		}
		cfg.Variant = a.variant
	}
	a.cfg = cfg

	logCfg := cfg.Logging
	if logCfg.Level == "" {
		logCfg.Level = logging.LevelWarn
	}
	// Keep stdout for command output
	logCfg.Console = cmd.ErrOrStderr()
	if err := logging.InitLogger(&logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logging.GetGlobalLogger()
	a.logger.Debug("Loaded config from %s", a.cfgPath)
	return nil
}

func (a *app) variantValue() expiry.Variant {
	v, err := a.cfg.VariantValue()
	if err != nil {
		// Validated on load
		return expiry.Default()
	}
	return v
}

func (a *app) newClient() (*client.Client, error) {
	return client.New(a.cfg.BaseURL, client.Options{
		Timeout:      a.cfg.Timeout,
		Variant:      a.variantValue(),
		SessionToken: a.cfg.SessionToken,
		Lang:         a.cfg.LangValue(),
		Logger:       a.logger,
	})
}

// logFailure logs a failed command unless the user was already shown why
func logFailure(logger *logging.Logger, err error) {
	var reported *reportedError
	if errors.As(err, &reported) {
		logger.Debug("Command execution failed: %v", err)
		return
	}
	logger.Error("Command execution failed: %v", err)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logFailure(logging.GetGlobalLogger(), err)
		os.Exit(1)
	}
}
