package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wayclip/internal/logging"
)

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and WAYCLIP_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → WAYCLIP_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("wayclip")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/wayclip/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/wayclip", home))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("WAYCLIP")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addCommonFlags adds the flags shared by every sub-command.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "auto", "clipboard backend: auto|wayland|native")
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// addLoggingFlags adds the logging flags used by serve.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json")
	cmd.Flags().String("log-level", "info", "log level: debug|info|warn|error")
}

// setupLogging reads logging flags from viper and configures slog.
func setupLogging(v *viper.Viper) {
	logging.Setup(v.GetString("log-format"), v.GetString("log-level"))
}
