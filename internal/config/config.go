package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config keys understood by huectl.
const (
	KeyBridgeAddress = "bridgeAddress"
	KeyUsername      = "username"
	KeyGeoLocation   = "geoLocation"
	KeyLogFile       = "logFile"
	KeyStorePath     = "storePath"
)

func Initialise() error {
	viper.SetConfigName("config")                // name of config file (without extension)
	viper.SetConfigType("json")                  // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/huectl/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/huectl/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                     // optionally look for config in the working directory

	viper.SetDefault(KeyStorePath, "huectl.db")

	err := viper.ReadInConfig()
	if err != nil {
		// flags can stand in for a config file
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
