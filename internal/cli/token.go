package cli

import (
	"fmt"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/platform/config"
	"github.com/SscSPs/procurement_tracker/internal/utils"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token [actor-id]",
	Short: "Mint a bearer token for local testing",
	Long: `Signs a token with JWT_SECRET and JWT_ISSUER the way the identity provider does,
so the API can be exercised without one. Never use against production.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roleFlag, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		role, err := domain.ParseRole(roleFlag)
		if err != nil {
			return err
		}
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.IsProduction {
			return fmt.Errorf("refusing to mint tokens with IS_PRODUCTION set")
		}
		token, err := utils.GenerateActorToken(domain.Actor{ID: args[0], Role: role}, cfg.JWTSecret, ttl, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("role", string(domain.RoleRequester), "REQUESTER, APPROVER or ADMINISTRATOR")
	tokenCmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
}

// TokenCmd returns the token command
func TokenCmd() *cobra.Command {
	return tokenCmd
}
