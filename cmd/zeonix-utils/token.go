package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zeonixpay/zeonix-dashboard/types"
	"github.com/zeonixpay/zeonix-dashboard/utils"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Session token utilities",
	Long:  "Generate session signing secrets and session cookies for ops use",
}

var generateTokenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a session cookie",
	Long:  "Mint a signed session cookie for a given session id and role",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateToken(cmd)
	},
}

var generateSecretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a random secret for session signing",
	Long:  "Generate a cryptographically secure random secret for session cookie signing",
	Run: func(cmd *cobra.Command, args []string) {
		generateSecret()
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.AddCommand(generateTokenCmd)
	tokenCmd.AddCommand(generateSecretCmd)

	generateTokenCmd.Flags().StringP("session-id", "i", "", "Session id to embed (random uuid if empty)")
	generateTokenCmd.Flags().StringP("role", "r", "admin", "Session role (merchant/admin/staff)")
	generateTokenCmd.Flags().StringP("duration", "d", "12h", "Cookie lifetime (e.g. '12h', '24h')")
	generateTokenCmd.Flags().StringP("secret", "s", "", "Signing secret (uses config value if not provided)")
	generateTokenCmd.Flags().StringP("config", "", "", "Path to config file to load secret from")
}

func generateToken(cmd *cobra.Command) error {
	sessionID, _ := cmd.Flags().GetString("session-id")
	role, _ := cmd.Flags().GetString("role")
	duration, _ := cmd.Flags().GetString("duration")
	secret, _ := cmd.Flags().GetString("secret")
	configPath, _ := cmd.Flags().GetString("config")

	if configPath != "" {
		cfg := &types.Config{}
		err := utils.ReadConfig(cfg, configPath)
		if err != nil {
			return fmt.Errorf("error reading config file: %v", err)
		}
		utils.Config = cfg
	}

	if secret == "" {
		if utils.Config != nil && utils.Config.Session.Secret != "" {
			secret = utils.Config.Session.Secret
		} else {
			return fmt.Errorf("no signing secret provided. Use --secret flag, --config flag, or set SESSION_SECRET in config")
		}
	}

	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	lifetime, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("invalid duration format: %v", err)
	}

	now := time.Now()
	claims := &types.SessionCookieClaims{
		SessionID: sessionID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %v", err)
	}

	fmt.Printf("Generated Session Cookie:\n")
	fmt.Printf("=========================\n")
	fmt.Printf("Session ID: %s\n", sessionID)
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("Expires: %s\n", now.Add(lifetime).Format(time.RFC3339))
	fmt.Printf("\n%s\n", tokenString)
	fmt.Printf("\nNote: the matching session row must exist in the session store for the cookie to resolve.\n")

	return nil
}

func generateSecret() {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		fmt.Printf("failed to generate secret: %v\n", err)
		return
	}

	fmt.Printf("Generated Signing Secret:\n")
	fmt.Printf("=========================\n")
	fmt.Printf("%s\n", base64.StdEncoding.EncodeToString(secret))
	fmt.Printf("\nSet this as session.secret in the config or via the SESSION_SECRET environment variable.\n")
}
