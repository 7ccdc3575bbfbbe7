package main

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"

	"github.com/ssoudan/huelib"
	"github.com/ssoudan/huelib/internal/config"
	"github.com/ssoudan/huelib/internal/store"
)

func bridgeAddress() (string, error) {
	addr := viper.GetString(config.KeyBridgeAddress)
	if addr == "" {
		return "", fmt.Errorf("no bridge address configured, set %s in the config file or pass --bridge", config.KeyBridgeAddress)
	}
	return addr, nil
}

func bridgeFromConfig() (*huelib.Bridge, error) {
	addr, err := bridgeAddress()
	if err != nil {
		return nil, err
	}

	username := viper.GetString(config.KeyUsername)
	if username == "" {
		// fall back to a stored registration for this bridge
		bridges, closeStore, err := openStore()
		if err == nil {
			defer closeStore()
			if saved, err := bridges.Get(addr); err == nil && saved != nil {
				username = saved.Username
			}
		}
	}
	if username == "" {
		return nil, fmt.Errorf(`no username for bridge %s, run "huectl register" first`, addr)
	}

	return huelib.NewBridge(addr, username, huelib.WithLogger(logger)), nil
}

func openStore() (*store.BridgeStore, func(), error) {
	path := viper.GetString(config.KeyStorePath)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("Error opening bridge store (%s): %w", path, err)
	}
	bridges, err := store.NewBridgeStore(logger, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return bridges, func() { _ = db.Close() }, nil
}
