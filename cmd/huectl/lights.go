package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssoudan/huelib"
	"github.com/ssoudan/huelib/internal/concurrency"
)

var lightsCmd = &cobra.Command{
	Use:   "lights",
	Short: "Inspect and control lights",
}

var lightsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all lights",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		lights, err := bridge.GetAllLights()
		if err != nil {
			return err
		}
		sort.Slice(lights, func(i, j int) bool { return lights[i].ID < lights[j].ID })

		for _, light := range lights {
			state := "off"
			if light.State.On != nil && *light.State.On {
				state = "on"
			}
			if !light.State.Reachable {
				state = "unreachable"
			}
			fmt.Printf("%-4s %-32s %-12s %s\n", light.ID, light.Name, state, light.ModelID)
		}
		return nil
	},
}

var lightsSetCmd = &cobra.Command{
	Use:   "set <id>...",
	Short: "Change the state of one or more lights",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modifier := lightStateModifierFromFlags(cmd)

		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}

		// the bridge rate-limits light writes to roughly 10 per second
		worker := concurrency.NewThrottledWorker(100*time.Millisecond, func(id string) error {
			outcomes, err := bridge.SetLightState(id, modifier)
			if err != nil {
				return fmt.Errorf("setting state of light %s: %w", id, err)
			}
			for _, outcome := range outcomes {
				if outcome.Error != nil {
					logger.Warn("field rejected", "light", id, "description", outcome.Error.Description)
				}
			}
			return nil
		})
		errs := worker.Run(args)
		for _, err := range errs {
			logger.Error(err)
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d of %d updates failed", len(errs), len(args))
		}
		return nil
	},
}

var lightsSearchCmd = &cobra.Command{
	Use:   "search [deviceid]...",
	Short: "Start a search for new lights",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		if err := bridge.SearchNewLights(huelib.Scanner{DeviceIDs: args}); err != nil {
			return err
		}
		fmt.Println("search started, check \"huectl lights new\" in about a minute")
		return nil
	},
}

var lightsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Show the lights found by the last search",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		scan, err := bridge.GetNewLights()
		if err != nil {
			return err
		}
		if scan.LastScan.Active {
			fmt.Println("search still running")
		}
		for _, r := range scan.Resources {
			fmt.Printf("%-4s %s\n", r.ID, r.Name)
		}
		return nil
	},
}

var lightsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a light from the bridge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := bridgeFromConfig()
		if err != nil {
			return err
		}
		return bridge.DeleteLight(args[0])
	},
}

func lightStateModifierFromFlags(cmd *cobra.Command) huelib.LightStateModifier {
	var modifier huelib.LightStateModifier
	flags := cmd.Flags()

	if flags.Changed("on") {
		on, _ := flags.GetBool("on")
		modifier.On = &on
	}
	if flags.Changed("bri") {
		v, _ := flags.GetUint8("bri")
		modifier.Brightness = huelib.Set(v)
	}
	if flags.Changed("bri-inc") {
		d, _ := flags.GetInt16("bri-inc")
		modifier.Brightness = huelib.Inc[uint8](int32(d))
	}
	if flags.Changed("hue") {
		v, _ := flags.GetUint16("hue")
		modifier.Hue = huelib.Set(v)
	}
	if flags.Changed("sat") {
		v, _ := flags.GetUint8("sat")
		modifier.Saturation = huelib.Set(v)
	}
	if flags.Changed("ct") {
		v, _ := flags.GetUint16("ct")
		modifier.ColorTemperature = huelib.Set(v)
	}
	if flags.Changed("ct-inc") {
		d, _ := flags.GetInt32("ct-inc")
		modifier.ColorTemperature = huelib.Inc[uint16](d)
	}
	if flags.Changed("xy") {
		xy, _ := flags.GetFloat32Slice("xy")
		if len(xy) == 2 {
			modifier.ColorSpaceCoordinates = huelib.SetXY(xy[0], xy[1])
		}
	}
	if flags.Changed("transition") {
		v, _ := flags.GetUint16("transition")
		modifier.TransitionTime = &v
	}
	return modifier
}

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("on", false, "turn the lights on (--on=false turns them off)")
	cmd.Flags().Uint8("bri", 0, "brightness, 1..254")
	cmd.Flags().Int16("bri-inc", 0, "brightness increment, -254..254")
	cmd.Flags().Uint16("hue", 0, "hue, 0..65535")
	cmd.Flags().Uint8("sat", 0, "saturation, 0..254")
	cmd.Flags().Uint16("ct", 0, "mired color temperature, 153..500")
	cmd.Flags().Int32("ct-inc", 0, "color temperature increment, -65534..65534")
	cmd.Flags().Float32Slice("xy", nil, "CIE color coordinates, e.g. --xy=0.31,0.32")
	cmd.Flags().Uint16("transition", 0, "transition time in multiples of 100ms")
}

func init() {
	rootCmd.AddCommand(lightsCmd)
	lightsCmd.AddCommand(lightsListCmd, lightsSetCmd, lightsSearchCmd, lightsNewCmd, lightsDeleteCmd)
	addStateFlags(lightsSetCmd)
}
