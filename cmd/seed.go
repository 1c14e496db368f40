package main

import (
	"context"

	"favsetter/internal/accounts"
	"favsetter/internal/config"
	"favsetter/internal/seed"
	"favsetter/internal/tags"
	"favsetter/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that inserts demo users, tags
// and favorites. It can be run repeatedly.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inserts demo users, tags and favorites",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			seeder := seed.New(strg, accounts.New(strg, accounts.NewOptions(cfg)), tags.New(strg))
			data := seed.Demo()
			if err := seeder.Run(ctx, data); err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}

			for _, u := range data.Users {
				logger.Info(ctx, "demo account ready",
					zap.String("email", u.Email),
					zap.String("password", seed.DemoPassword))
			}
		},
	}

	return cmd
}
