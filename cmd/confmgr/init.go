package main

import (
	"github.com/gnames/gn"
	"github.com/samiksha22122/ConfigManager/internal/ioconfig"
	"github.com/spf13/cobra"
)

// getInitCmd returns the init command.
func getInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold the default configuration documents",
		Long: `Write the default cloud.yaml, app.yaml, database.yaml and
secrets.yaml into the configuration directory. Existing documents are
kept unless --force is set.

The scaffolded secrets.yaml carries the REPLACE_ME placeholder, so
validation fails until a real API key is set.

Examples:
  confmgr init
  confmgr init --force
  confmgr init --config-dir ./config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(force)
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false,
		"overwrite existing documents")

	return initCmd
}

func runInit(force bool) error {
	dir := configDir
	if dir == "" {
		var err error
		dir, err = ioconfig.GetConfigDir()
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	created, err := ioconfig.GenerateDefaultConfig(dir, force)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	for _, path := range created {
		if err := ioconfig.ValidateGeneratedConfig(path); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Created <em>%s</em>", path)
	}

	getLogger().Info("Scaffolded configuration documents",
		"dir", dir,
		"created", len(created),
	)

	gn.Info(`Next steps:
   - Set a real API key in '<em>%s</em>'
   - Run '<em>confmgr validate sample_domain</em>' to check the result
`, ioconfig.SecretsPath(dir))

	return nil
}
