// Package main provides the CLI entrypoint for the FavSetter service.
// It wires subcommands (serve, migrate, seed, jwt, resolve), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"favsetter/internal/config"
	"favsetter/pkg/logger"
	"favsetter/pkg/metadata"
	"favsetter/pkg/session"
	"favsetter/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getResolver creates the URL metadata resolver. A nil meterProvider falls
// back to the global one.
func getResolver(ctx context.Context, cfg *config.Config, meterProvider metric.MeterProvider) *metadata.HTTPResolver {
	resolver, err := metadata.New(nil, metadata.Options{
		Timeout:       cfg.Metadata.Timeout,
		UserAgent:     cfg.Metadata.UserAgent,
		MaxBodyBytes:  cfg.Metadata.MaxBodyBytes,
		MeterProvider: meterProvider,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create metadata resolver", zap.Error(err))
	}

	return resolver
}

// getSessions creates the session manager that signs and verifies login tokens.
func getSessions(ctx context.Context, cfg *config.Config) *session.Manager {
	sessions, err := session.New(session.Options{
		Secret:       cfg.Session.Secret,
		TTL:          cfg.Session.TTL,
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.SecureCookies(),
	})
	if err != nil {
		logger.Fatal(ctx, "could not create session manager", zap.Error(err))
	}

	return sessions
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "favsetter",
		Short: "Personal bookmarking service",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		seedCommand(cfg),
		JWTCommand(cfg),
		resolveCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
