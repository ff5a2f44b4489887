package commands

import (
	"log/slog"

	"github.com/pennywise-dev/pennywise/internal/categories"
	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/currency"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/logging"
	"github.com/pennywise-dev/pennywise/internal/storage"
)

// appOptions carries root-level flag overrides into subcommands.
type appOptions struct {
	dataDir  *string
	backend  *string
	logLevel *string
}

// app bundles the wired services a command works with.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  storage.Store
	ledger *ledger.Service
	cats   *categories.Service
	money  *currency.Formatter
}

// openApp loads config, applies flag overrides, and wires storage, ledger,
// and formatting.
func openApp(opts *appOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *opts.dataDir != "" {
		cfg.DataDir = *opts.dataDir
	}
	if *opts.backend != "" {
		cfg.Backend = *opts.backend
	}
	if *opts.logLevel != "" {
		cfg.LogLevel = *opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.Setup(logging.Config{
		Level: logging.ParseLevel(cfg.LogLevel),
		JSON:  cfg.LogJSON,
	})

	store, err := storage.Open(storage.Backend(cfg.Backend), cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}

	svc, err := ledger.NewService(store, ledger.WithLogger(logger))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		ledger: svc,
		cats:   categories.NewService(),
		money:  currency.NewFormatter(svc.Currency()),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
