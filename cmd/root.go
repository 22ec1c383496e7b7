package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "yatzy",
	Short: "Rule-driven dice scoring engine",
	Long: `yatzy simulates games from the Yahtzee family against data-defined
scorecards. Variants are built in or loaded from YAML rule files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.yatzy.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log every roll")
	rootCmd.PersistentFlags().String("rules-dir", "", "directory with extra YAML rule definitions")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("rules_dir", rootCmd.PersistentFlags().Lookup("rules-dir"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".yatzy")
		}
	}
	viper.SetEnvPrefix("yatzy")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
