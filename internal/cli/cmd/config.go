package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/swellgo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect swellgo configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path to the active configuration file",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(app.Manager.GetConfigFile())
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file and exit non-zero on error",
	RunE: func(_ *cobra.Command, _ []string) error {
		mgr, err := config.NewManager()
		if err != nil {
			return wrapPrintedError(fmt.Errorf("create config manager: %w", err))
		}
		if err := mgr.Load(); err != nil {
			fmt.Println(app.Theme.ErrorStyle.Render("configuration is invalid:"))
			fmt.Println(err)
			return wrapPrintedError(err)
		}
		fmt.Println(app.Theme.SuccessStyle.Render("configuration is valid"))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Regenerate the JSON schema file for the configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		return config.GenerateSchemaFile()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configValidateCmd, configSchemaCmd)
}
