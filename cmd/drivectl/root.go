package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drivescout/graph-drive-client/pkg/logging"
	"github.com/drivescout/graph-drive-client/pkg/version"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "drivectl",
	Short: "Inspect OneDrive metadata collections via the Graph API",
	Long: `drivectl fetches remote-storage metadata collections (followed items,
items shared with you, recent items) from the Graph API, following
pagination cursors until the full collection is assembled.

The bearer token is read from --token, the GRAPH_ACCESS_TOKEN environment
variable, or the config file.`,
	Version: version.UserAgent(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.drivectl.yaml)")
	rootCmd.PersistentFlags().String("token", "", "Graph bearer access token")
	rootCmd.PersistentFlags().String("base-url", "", "Graph API base URL")
	rootCmd.PersistentFlags().String("proxy", "", "Outbound proxy endpoint")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "Human-readable console logs instead of JSON")

	// Bind flags to viper
	_ = viper.BindPFlag("graph.access_token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("graph.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("proxy.endpoint", rootCmd.PersistentFlags().Lookup("proxy"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".drivectl")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(viper.GetString("log.level")),
		Pretty: viper.GetBool("log.pretty"),
		Output: os.Stderr,
	})
}
