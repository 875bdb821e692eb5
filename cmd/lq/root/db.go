package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"lifequest/internal/catalog"
	"lifequest/internal/config"
	"lifequest/internal/engine"
	"lifequest/internal/storage"
	"lifequest/internal/ui"
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	cat, err := catalog.LoadOrBuiltin(cfg.CatalogPath, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	svc := engine.NewService(db, cat, logger)
	reminders := engine.NewReminderScheduler(cfg.ReminderLead, printReminder, logger)
	svc.SetReminderScheduler(reminders)

	cleanup := func() {
		reminders.Stop()
		_ = db.Close()
	}
	return svc, cleanup, nil
}

func printReminder(n engine.Notification) {
	fmt.Fprintln(os.Stderr, ui.Warn.Render(ui.IconBell+" "+n.Title)+" "+ui.Muted.Render(n.Detail))
}
