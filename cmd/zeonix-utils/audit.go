package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeonixpay/zeonix-dashboard/db"
	"github.com/zeonixpay/zeonix-dashboard/dbtypes"
	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log utilities",
	Long:  "Inspect the local audit log of proxied mutations",
}

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit log entries",
	Long:  "Print the most recent proxied mutations recorded in the local audit log",
	RunE:  runAuditList,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditListCmd)

	auditListCmd.Flags().String("config", "", "Path to the config file")
	auditListCmd.Flags().Int("limit", 50, "Maximum number of entries to print")
	auditListCmd.Flags().Int("offset", 0, "Number of entries to skip")
}

func runAuditList(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	cfg := &types.Config{}
	err := utils.ReadConfig(cfg, configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}
	utils.Config = cfg

	db.MustInitDB()
	defer db.MustCloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := db.GetAuditLogs(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("error reading audit log: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("audit log is empty")
		return nil
	}

	for _, entry := range entries {
		details := &dbtypes.AuditLogDetails{}
		if err := db.DecodeAuditDetails(entry, details); err != nil {
			fmt.Printf("#%v %v %v %v %v %v (undecodable details: %v)\n",
				entry.ID, entry.CreatedAt.Format(time.RFC3339), entry.Role, entry.Method, entry.Route, entry.StatusCode, err)
			continue
		}

		line := fmt.Sprintf("#%v %v %v %v %v %v",
			entry.ID, entry.CreatedAt.Format(time.RFC3339), entry.Role, entry.Method, entry.Route, entry.StatusCode)
		if details.UpstreamPath != "" {
			line += fmt.Sprintf(" -> %v", details.UpstreamPath)
		}
		if details.RequestSize > 0 {
			line += fmt.Sprintf(" (%v bytes)", details.RequestSize)
		}
		fmt.Println(line)
	}
	return nil
}
