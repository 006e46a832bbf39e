package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database schema migrations",
	Long:  "Apply the embedded goose schema migrations to the configured database",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("config", "", "Path to the config file")
	migrateCmd.Flags().String("version", "", "Target schema version (empty = latest, 'next' = one step)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	versionStr, _ := cmd.Flags().GetString("version")

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	utils.Config = cfg

	version := int64(-2)
	switch versionStr {
	case "", "latest":
	case "next":
		version = -1
	default:
		version, err = strconv.ParseInt(versionStr, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version: %v", versionStr)
		}
	}

	db.MustInitDB()
	defer db.MustCloseDB()

	err = db.ApplyEmbeddedDbSchema(version)
	if err != nil {
		return fmt.Errorf("error applying db schema: %v", err)
	}

	logrus.Printf("db schema is up to date")
	return nil
}
