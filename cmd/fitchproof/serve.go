// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Fitchproof Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitchproof/fitchproof/internal/api"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the proof check API over HTTP",
		Long: `Serve the proof check API: POST /v1/check takes a JSON proof
document and returns the verdict. Health probes live under /healthz
and Prometheus metrics under /metrics.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			return runServe(cmd.Context(), cfg.Serve.Addr, cfg.Rulesets)
		},
	}

	cmd.Flags().String("serve-addr", "", "listen address (overrides config)")
	cmd.Flags().StringSlice("rulesets", nil, "default rulesets (overrides config)")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("log-format", "", "log format (json or text)")

	return cmd
}

func runServe(ctx context.Context, addr string, rulesets []string) error {
	slog.Info("fitchproof starting",
		"version", version,
		"commit", commit,
		"addr", addr,
		"rulesets", rulesets,
	)

	srv := api.NewServer(addr, rulesets)
	if err := srv.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Warn("error stopping api server", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
