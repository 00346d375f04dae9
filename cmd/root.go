package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlasgrow/atlas-go/cmd/check"
	"github.com/atlasgrow/atlas-go/cmd/serve"
	"github.com/atlasgrow/atlas-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atlas-go",
		Short: "Atlas-Go hydroponic unit monitoring service",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		serve.Command(settings),
		check.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines global flags and binds them to viper
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Dataservice.BaseURL, "baseurl", settings.Dataservice.BaseURL, "Base URL of the data service API")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		cobra.CheckErr(err)
	}
}
