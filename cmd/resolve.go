package main

import (
	"context"
	"encoding/json"
	"os"

	"favsetter/internal/config"
	"favsetter/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCommand constructs the 'resolve' subcommand that prints the metadata
// resolved for a URL as JSON. Nothing is stored.
func resolveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Prints the metadata resolved for a URL",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			md := getResolver(ctx, cfg, nil).Resolve(ctx, args[0])

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(md); err != nil {
				logger.Fatal(ctx, "could not print metadata", zap.Error(err))
			}
		},
	}

	return cmd
}
