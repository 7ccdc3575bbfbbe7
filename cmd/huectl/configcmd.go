package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the bridge configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the bridge configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		cfg, err := bridge.GetConfig()
		if err != nil {
			return err
		}

		fmt.Printf("name:              %s\n", cfg.Name)
		fmt.Printf("bridge id:         %s\n", cfg.BridgeID)
		fmt.Printf("model:             %s\n", cfg.ModelID)
		fmt.Printf("software version:  %s\n", cfg.SoftwareVersion)
		fmt.Printf("api version:       %s\n", cfg.APIVersion)
		fmt.Printf("ip address:        %s\n", cfg.IPAddress)
		fmt.Printf("mac address:       %s\n", cfg.MACAddress)
		fmt.Printf("timezone:          %s\n", cfg.Timezone)
		fmt.Printf("zigbee channel:    %d\n", cfg.ZigbeeChannel)
		fmt.Printf("registered users:  %d\n", len(cfg.Whitelist))
		return nil
	},
}

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show the remaining capacity of the bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		caps, err := bridge.GetCapabilities()
		if err != nil {
			return err
		}

		fmt.Printf("lights:        %d available\n", caps.Lights.Available)
		fmt.Printf("groups:        %d available\n", caps.Groups.Available)
		fmt.Printf("scenes:        %d available\n", caps.Scenes.Available)
		fmt.Printf("schedules:     %d available\n", caps.Schedules.Available)
		fmt.Printf("rules:         %d available\n", caps.Rules.Available)
		fmt.Printf("sensors:       %d available\n", caps.Sensors.Available)
		fmt.Printf("resourcelinks: %d available\n", caps.Resourcelinks.Available)
		fmt.Printf("streaming:     %d available (%d channels)\n", caps.Streaming.Available, caps.Streaming.Channels)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd, capabilitiesCmd)
	configCmd.AddCommand(configShowCmd)
}
