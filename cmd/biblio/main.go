package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/openbiblio/biblio/internal/client/api"
	"github.com/openbiblio/biblio/internal/client/cli"
	"github.com/openbiblio/biblio/internal/client/config"
	"github.com/openbiblio/biblio/internal/client/iocli"
	"github.com/openbiblio/biblio/internal/client/notify"
	"github.com/openbiblio/biblio/internal/client/session"
	"github.com/openbiblio/biblio/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	stdio := iocli.NewStdio()
	toasts := notify.NewQueue()
	unsubscribe := cli.AttachToastPrinter(toasts, stdio)
	defer unsubscribe()

	router := cli.NewRouter(stdio)

	apiClient := api.NewClient(cfg.ServerURL, cfg.HTTPTimeout)
	sess := session.New(apiClient, store, router, toasts)

	// Every request reads the current token; any 401 anywhere runs the
	// same clear-and-redirect path, regardless of which command called.
	apiClient.SetTokenSource(sess.Token)
	apiClient.SetOnUnauthorized(func() {
		sess.HandleUnauthorized(ctx)
	})

	sess.Initialize(ctx)

	c := cli.New(stdio, os.Stdout, apiClient, sess, router, toasts, cfg)
	root := cli.NewRootCommand(c)
	root.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)

	return root.ExecuteContext(ctx)
}
