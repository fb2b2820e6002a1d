package main

import (
	"context"
	"fmt"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type tokenDeps struct {
	fx.In

	Tokens service.TokenService
}

func tokenCommand() *cobra.Command {
	var (
		subject string
		roles   []string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for a producer service or an operator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID := uuid.New()
			if subject != "" {
				parsed, err := uuid.Parse(subject)
				if err != nil {
					return errors.Wrapf(err, "invalid --subject %q", subject)
				}
				userID = parsed
			}

			valid := entity.RolesFromStrings(roles)
			if len(valid) != len(roles) || len(valid) == 0 {
				return errors.Errorf("--role must be one or more of user, service, admin")
			}

			return run(cmd, func(_ context.Context, deps tokenDeps) error {
				token, err := deps.Tokens.GenerateToken(userID, valid.ToStrings(), ttl)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), token)

				return errors.WithStack(err)
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "user ID to embed; random when empty")
	cmd.Flags().StringSliceVar(&roles, "role", []string{entity.RoleService.String()}, "role to grant, repeatable")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
