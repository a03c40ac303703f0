package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/futurefunds/retirement-planner/internal/api"
	"github.com/futurefunds/retirement-planner/internal/config"
	"github.com/futurefunds/retirement-planner/internal/scenario"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		configFile string
		addr       string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig(configFile)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			catalog := schemes.DefaultCatalog()
			if cfg.CatalogFile != "" {
				if catalog, err = schemes.LoadCatalog(cfg.CatalogFile); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, closeStore, err := openStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer closeStore()
			a.logger.Infof("scenario store: %s", cfg.Store.Kind)

			return api.NewServer(store, catalog, a.logger).ListenAndServe(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "server config file (YAML)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config file")
	return cmd
}

// openStore builds the configured scenario store and a function releasing its resources.
func openStore(ctx context.Context, cfg config.StoreConfig) (scenario.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Kind {
	case config.StoreMemory:
		return scenario.NewMemoryStore(), noop, nil
	case config.StoreFile:
		s, err := scenario.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		s := scenario.NewRedisStore(client, cfg.Redis.Prefix)
		if err := s.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return s, client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
}
