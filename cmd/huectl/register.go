package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssoudan/huelib"
	"github.com/ssoudan/huelib/internal/store"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find bridges in the local network",
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := huelib.DiscoverBridges(nil)
		if err != nil {
			return err
		}
		if len(addrs) == 0 {
			fmt.Println("no bridges found")
			return nil
		}
		for _, addr := range addrs {
			fmt.Println(addr)
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user on the bridge (press the link button first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := bridgeAddress()
		if err != nil {
			return err
		}

		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		devicetype := fmt.Sprintf("huectl#%s", hostname)

		username, clientKey, err := huelib.RegisterUserWithClientKey(addr, devicetype)
		if err != nil {
			return fmt.Errorf("registering with bridge %s: %w", addr, err)
		}

		bridges, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()
		err = bridges.Save(store.Bridge{
			Address:      addr,
			Username:     username,
			ClientKey:    clientKey,
			RegisteredAt: time.Now(),
		})
		if err != nil {
			return err
		}

		logger.Info("registered with bridge", "address", addr, "username", username)
		fmt.Println(username)
		return nil
	},
}

var bridgesCmd = &cobra.Command{
	Use:   "bridges",
	Short: "List stored bridge registrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		bridges, closeStore, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore()

		all, err := bridges.GetAll()
		if err != nil {
			return err
		}
		for _, bridge := range all {
			fmt.Printf("%-16s %-42s %s\n", bridge.Address, bridge.Username, bridge.RegisteredAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd, registerCmd, bridgesCmd)
}
