// Package commands implements the CLI commands for goelunch.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/goelunch/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "goelunch",
	Short: "Daily canteen menus of the Studentenwerk Göttingen",
	Long: `Goelunch fetches the Göttingen speiseplan, picks the canteen you
asked for and prints its menu for the day.

Canteen names match loosely: an exact name, or any unambiguous part of
one, is enough.

Examples:
  # Today's menu of the configured default canteen
  goelunch menu

  # Tomorrow at the Zentralmensa (partial name is fine)
  goelunch menu tomorrow zentral

  # A specific day
  goelunch menu 2026-09-02 "Mensa am Turm"

  # Which canteens are listed today?
  goelunch canteens`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.goelunch.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".goelunch")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("GOELUNCH")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
