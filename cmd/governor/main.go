package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:          "governor",
		Short:        "Action governance and explainability for automated dashboard actions",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.governor/config.yaml)")
	cobra.OnInitialize(initConfig)

	root.AddCommand(
		newRegisterCmd(),
		newValidateCmd(),
		newAckCmd(),
		newStatusCmd(),
		newDecideCmd(),
		newHistoryCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	if strings.TrimSpace(cfgFile) != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil && strings.TrimSpace(home) != "" {
			viper.AddConfigPath(filepath.Join(home, ".governor"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("GOVERNOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine; a broken explicit one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && strings.TrimSpace(cfgFile) != "" {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(viper.GetString("log.level"))) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
