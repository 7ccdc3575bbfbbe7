package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssoudan/huelib"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Inspect scenes",
}

var scenesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		scenes, err := bridge.GetAllScenes()
		if err != nil {
			return err
		}
		sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })

		for _, scene := range scenes {
			group := ""
			if scene.Group != nil {
				group = *scene.Group
			}
			fmt.Printf("%-16s %-32s %-4s %s\n", scene.ID, scene.Name, group, strings.Join(scene.Lights, ","))
		}
		return nil
	},
}

var scenesRecallCmd = &cobra.Command{
	Use:   "recall <id>",
	Short: "Recall a scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		group, _ := cmd.Flags().GetString("group")

		// recalling through the group action applies the scene to the
		// lights of the given group; group 0 covers all lights
		outcomes, err := bridge.SetGroupState(group, huelib.GroupStateModifier{Scene: &args[0]})
		if err != nil {
			return err
		}
		for _, outcome := range outcomes {
			if outcome.Error != nil {
				return outcome.Error
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenesCmd)
	scenesCmd.AddCommand(scenesListCmd, scenesRecallCmd)
	scenesRecallCmd.Flags().String("group", "0", "group to recall the scene for")
}
