package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	jwttoken "hrms/internal/jwt_token"
	"hrms/pkg/domain"
)

// newTokenCmd mints access tokens signed with the configured secret, for
// local development and smoke tests.
func newTokenCmd(a *app) *cobra.Command {
	var (
		userID     string
		role       string
		employeeID string
		ttl        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Server.IsProduction() {
				return fmt.Errorf("token issuing is disabled in production")
			}
			actor := domain.Actor{ID: domain.NewUserID()}
			if userID != "" {
				id, err := domain.ParseUserID(userID)
				if err != nil {
					return err
				}
				actor.ID = id
			}
			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			actor.Role = r
			if employeeID != "" {
				id, err := domain.ParseEmployeeID(employeeID)
				if err != nil {
					return err
				}
				actor.OwnedEntityID = &id
			}

			token, err := jwttoken.NewJWTService(a.cfg.Server.JWTSecret, tokenIssuer, tokenAudience).
				GenerateAccessToken(actor, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleEmployee), "ADMIN, HR, MANAGER or EMPLOYEE")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Employee id linked to the account")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
