package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ssoudan/huelib/internal/config"
)

var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:          "huectl",
	Short:        "Control a Hue bridge from the command line",
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initialise)

	rootCmd.PersistentFlags().String("bridge", "", "address of the bridge (overrides the config file)")
	rootCmd.PersistentFlags().String("username", "", "registered bridge username (overrides the config file)")
	_ = viper.BindPFlag(config.KeyBridgeAddress, rootCmd.PersistentFlags().Lookup("bridge"))
	_ = viper.BindPFlag(config.KeyUsername, rootCmd.PersistentFlags().Lookup("username"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initialise() {
	if err := config.Initialise(); err != nil {
		log.Fatal(err)
	}
	logger = newLogger()
}

func newLogger() *log.Logger {
	opts := log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	}
	if logFile := viper.GetString(config.KeyLogFile); logFile != "" {
		return log.NewWithOptions(&lumberjack.Logger{
			Filename: logFile,
			MaxAge:   3,
		}, opts)
	}
	return log.NewWithOptions(os.Stderr, opts)
}
