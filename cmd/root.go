package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bubbleforge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "bubbleforge",
	Short: "Level designer for staggered-grid bubble puzzles",
	Long: `Bubbleforge edits bubble puzzle stages: place energy, effect, obstacle,
creature and capture bubbles on a staggered grid, set the field, and save
levels to the configured store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .bubbleforge.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.String("store", "", "store backend: memory, file, sqlite or bolt")
	flags.String("store-path", "", "directory holding the store's files")
	flags.String("codec", "", "payload codec: json, toml or yaml")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("store.backend", flags.Lookup("store"))
	_ = viper.BindPFlag("store.path", flags.Lookup("store-path"))
	_ = viper.BindPFlag("store.codec", flags.Lookup("codec"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bubbleforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.ConfigureEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
