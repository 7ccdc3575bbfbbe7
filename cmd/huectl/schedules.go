package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ssoudan/huelib"
	"github.com/ssoudan/huelib/internal/config"
	"github.com/ssoudan/huelib/internal/suntimes"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Inspect and create schedules",
}

var schedulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		schedules, err := bridge.GetAllSchedules()
		if err != nil {
			return err
		}
		sort.Slice(schedules, func(i, j int) bool { return schedules[i].ID < schedules[j].ID })

		for _, schedule := range schedules {
			fmt.Printf("%-4s %-32s %-20s %s\n", schedule.ID, schedule.Name, schedule.LocalTime, schedule.Status)
		}
		return nil
	},
}

var schedulesSunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Create daily schedules that turn a group on at sunrise and off at sunset",
	RunE: func(cmd *cobra.Command, args []string) error {
		geoLocation := viper.GetString(config.KeyGeoLocation)
		if geoLocation == "" {
			return fmt.Errorf("no %s configured, e.g. \"51.48,0.0\"", config.KeyGeoLocation)
		}
		rise, set, err := suntimes.ForDate(geoLocation, time.Now())
		if err != nil {
			return err
		}

		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		group, _ := cmd.Flags().GetString("group")

		riseID, err := createGroupOnSchedule(bridge, "Sunrise", group, rise.Local(), true)
		if err != nil {
			return err
		}
		setID, err := createGroupOnSchedule(bridge, "Sunset", group, set.Local(), false)
		if err != nil {
			return err
		}

		logger.Info("schedules created",
			"sunrise", rise.Local().Format("15:04"), "sunriseScheduleID", riseID,
			"sunset", set.Local().Format("15:04"), "sunsetScheduleID", setID)
		return nil
	},
}

func createGroupOnSchedule(bridge *huelib.Bridge, name, group string, at time.Time, on bool) (string, error) {
	// W127 is the recurrence bitmask for "every day of the week"
	localtime := fmt.Sprintf("W127/T%s", at.Format("15:04:05"))
	creator := huelib.ScheduleCreator{
		Name:      &name,
		Action:    groupOnAction(bridge.Username(), group, on),
		LocalTime: localtime,
	}
	id, err := bridge.CreateSchedule(creator)
	if err != nil {
		return "", fmt.Errorf("creating schedule %q: %w", name, err)
	}
	return id, nil
}

func groupOnAction(username, group string, on bool) huelib.Action {
	return huelib.Action{
		Address: fmt.Sprintf("/api/%s/groups/%s/action", username, group),
		Method:  "PUT",
		Body:    map[string]any{"on": on},
	}
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
	schedulesCmd.AddCommand(schedulesListCmd, schedulesSunCmd)
	schedulesSunCmd.Flags().String("group", "0", "group the schedules control")
}
