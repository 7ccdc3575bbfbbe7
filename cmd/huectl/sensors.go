package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Inspect sensors",
}

var sensorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sensors",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		sensors, err := bridge.GetAllSensors()
		if err != nil {
			return err
		}
		sort.Slice(sensors, func(i, j int) bool { return sensors[i].ID < sensors[j].ID })

		for _, sensor := range sensors {
			fmt.Printf("%-4s %-32s %-24s %s\n", sensor.ID, sensor.Name, sensor.Kind, sensor.ModelID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sensorsCmd)
	sensorsCmd.AddCommand(sensorsListCmd)
}
