package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"catalog/config"
	"catalog/internal/client/api"
	"catalog/internal/client/cli"
	"catalog/internal/client/session"
	logs "catalog/internal/infra/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.NewClient()
	if err != nil {
		return err
	}

	logger, err := logs.NewWithWriter(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}

	store, err := session.OpenSQLiteStore(ctx, cfg.Session.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	client := api.NewFromConfig(cfg, logger)
	sessions := session.NewManager(client, store,
		session.WithTTL(cfg.Session.TTL),
		session.WithLogger(logger),
	)
	if user, err := sessions.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "Failed to restore session", slog.Any("error", err))
	} else if user != nil {
		logger.DebugContext(ctx, "Session restored", slog.String("user_id", user.ID.String()))
	}

	router := cli.NewRouter(&cli.Deps{
		Actions: client,
		Session: sessions,
		In:      bufio.NewReader(os.Stdin),
		Out:     os.Stdout,
		Logger:  logger,
	})

	return router.Run(ctx)
}
