package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"mahrous.dev/internal/config"
	"mahrous.dev/internal/handlers"
)

var logLevel = new(slog.LevelVar)

func main() {
	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(logHandler))

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("exiting with an error: " + err.Error())
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio-server",
		Short:         "API server for the portfolio website",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address (overrides $SERVER_ADDR)")
	flags.Bool("debug", false, "debug logging [$DEBUG]")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if debug, _ := flags.GetBool("debug"); debug || os.Getenv("DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}

	cfg := config.Load()
	if addr, _ := flags.GetString("addr"); addr != "" {
		cfg.ServerAddr = addr
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ServerAddr, "username", cfg.GitHubUsername)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
