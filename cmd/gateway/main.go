package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	api "github.com/mani-django09/new-calc-sub000/internal/api/http"
	"github.com/mani-django09/new-calc-sub000/internal/cache"
	"github.com/mani-django09/new-calc-sub000/internal/config"
	"github.com/mani-django09/new-calc-sub000/internal/metadata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr     string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "calc-gateway",
		Short: "HTTP gateway for the calculator suite",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return serve(cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	return cmd
}

func serve(cfg config.Config) error {
	log := config.NewLogger(cfg.LogLevel)

	reg, err := metadata.Load()
	if err != nil {
		return err
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c = cache.NewRedisCache(cfg.RedisAddr, time.Duration(cfg.CacheTTL)*time.Second)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis result cache")
	} else {
		c = cache.NewMemoryCache()
		log.Info().Msg("using in-memory result cache")
	}

	router, limiter := api.NewRouter(cfg, c, reg, log)
	if limiter != nil {
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("calculator gateway listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		return err
	}
	log.Info().Msg("server exited")
	return nil
}
