package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssoudan/huelib"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Inspect and control groups of lights",
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		groups, err := bridge.GetAllGroups()
		if err != nil {
			return err
		}
		sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

		for _, group := range groups {
			state := ""
			if group.State != nil {
				switch {
				case group.State.AllOn:
					state = "all on"
				case group.State.AnyOn:
					state = "some on"
				default:
					state = "off"
				}
			}
			fmt.Printf("%-4s %-32s %-14s %-8s %s\n", group.ID, group.Name, group.Kind, state, strings.Join(group.Lights, ","))
		}
		return nil
	},
}

var groupsSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Change the state of every light in a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := lightStateModifierFromFlags(cmd)
		modifier := huelib.GroupStateModifier{
			On:                    state.On,
			Brightness:            state.Brightness,
			Hue:                   state.Hue,
			Saturation:            state.Saturation,
			ColorSpaceCoordinates: state.ColorSpaceCoordinates,
			ColorTemperature:      state.ColorTemperature,
			TransitionTime:        state.TransitionTime,
		}
		if cmd.Flags().Changed("scene") {
			scene, _ := cmd.Flags().GetString("scene")
			modifier.Scene = &scene
		}

		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		outcomes, err := bridge.SetGroupState(args[0], modifier)
		if err != nil {
			return err
		}
		for _, outcome := range outcomes {
			if outcome.Error != nil {
				logger.Warn("field rejected", "group", args[0], "description", outcome.Error.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsListCmd, groupsSetCmd)
	addStateFlags(groupsSetCmd)
	groupsSetCmd.Flags().String("scene", "", "scene to recall for the group")
}
