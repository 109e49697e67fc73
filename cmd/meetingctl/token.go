package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/pkg/jwt"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API access token",
	Long:  `token signs a bearer token with JWT_ACCESS_SECRET for clients of an API started with AUTH_ENABLED=true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.AccessSecret == "" {
			return fmt.Errorf("JWT_ACCESS_SECRET is not configured")
		}

		manager := jwt.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessExpiry)
		token, err := manager.GenerateAccessToken(tokenSubject)
		if err != nil {
			return fmt.Errorf("signing token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "meetingctl", "token subject (client name)")
	rootCmd.AddCommand(tokenCmd)
}
