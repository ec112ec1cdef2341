package main

import (
	"log/slog"

	"github.com/gnames/gn"
	"github.com/samiksha22122/ConfigManager/internal/ioconfig"
	"github.com/samiksha22122/ConfigManager/pkg/config"
	"github.com/samiksha22122/ConfigManager/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configDir string
	envName   string
	cfg       *config.Config
	lg        *slog.Logger
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confmgr",
		Short: "confmgr validates layered YAML configuration",
		Long: `confmgr merges layered YAML configuration documents and validates
the result for a deployment domain.

Four documents are read from the configuration directory and merged in
a fixed order, later documents overriding earlier ones:
  1. cloud.yaml    - cloud provider settings per domain
  2. app.yaml      - application settings (model_type, features)
  3. database.yaml - database settings per domain
  4. secrets.yaml  - API keys per domain

Each document may carry profile sections ('default', 'production', ...);
the profile selected with --env overlays the 'default' section.
Individual keys can be overridden with CONFMGR_* environment variables,
nested keys separated by double underscores:

  CONFMGR_MODEL_TYPE                              model_type
  CONFMGR_DATABASE_DETAILS__SAMPLE_DOMAIN__PORT   database port

Environment Variables:
  CONFMGR_ENV         environment profile (same as --env)
  CONFMGR_CONFIG_DIR  configuration directory (same as --config-dir)`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
	}

	// Remove the automatic "confmgr version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"config directory (default: CONFMGR_CONFIG_DIR or ~/.config/confmgr)")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "",
		"environment profile (default: CONFMGR_ENV or 'default')")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for confmgr")

	rootCmd.AddCommand(getValidateCmd())
	rootCmd.AddCommand(getShowCmd())
	rootCmd.AddCommand(getDomainsCmd())
	rootCmd.AddCommand(getInitCmd())

	return rootCmd
}

// bootstrap loads the merged snapshot once and configures the
// process-wide logger from it. Subcommands read both through getConfig
// and getLogger.
func bootstrap(cmd *cobra.Command, args []string) error {
	res, err := ioconfig.Load(configDir, envName)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg = res.Config

	lg = logger.New(cfg.LogConfig())
	slog.SetDefault(lg)

	if res.Source == "none" && cmd.Name() != "init" {
		gn.Warn(`<warn>No configuration documents found in <em>%s</em></warn>
   Run '<em>confmgr init</em>' to scaffold the default documents.`, res.Dir)
	}

	lg.Debug("Configuration loaded",
		"dir", res.Dir,
		"profile", cfg.Profile(),
		"source", res.Source,
	)
	return nil
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}

// getLogger returns the logger configured from the loaded snapshot.
func getLogger() *slog.Logger {
	return lg
}
