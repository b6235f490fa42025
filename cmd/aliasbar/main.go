package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AntonioJCosta/aliasbar/internal/adapters/arithmetic"
	"github.com/AntonioJCosta/aliasbar/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/aliasbar/internal/config"
	"github.com/AntonioJCosta/aliasbar/internal/core/ports"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/aliasstore"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/inputclassification"
	"github.com/AntonioJCosta/aliasbar/internal/core/services/inputresolution"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/cli"
	"github.com/AntonioJCosta/aliasbar/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasbar/internal/logging"
	"github.com/AntonioJCosta/aliasbar/internal/repositories/aliasfile"
	"github.com/AntonioJCosta/aliasbar/internal/repositories/aliastable"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	backend, closeBackend, err := newBackend(cfg.Store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing alias store: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Warn("closing alias store", zap.Error(err))
		}
	}()
	logger.Debug("alias store configured", zap.String("backend", cfg.Store.Backend), zap.String("path", cfg.Store.Path))

	store := aliasstore.NewService(backend, logger)

	classifier := inputclassification.NewService(arithmetic.NewEvaluator(), cfg.Search.URLTemplate)
	resolutionSvc := inputresolution.NewService(classifier, store, logger)

	// The management service handles a nil provider.
	predefinedAliasProvider, err := predefinedaliases.NewYAMLProvider(cfg.Predefined.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize predefined alias provider %v. Continuing without predefined aliases.\n", err)
		predefinedAliasProvider = nil
	}
	aliasManagementSvc := aliasmanagement.NewService(store, predefinedAliasProvider)

	rootCmd := cli.NewRootCommand(Version, resolutionSvc, aliasManagementSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	return 0
}

// newBackend builds the configured durable backend and its release func.
func newBackend(cfg config.StoreConfig) (ports.AliasBackend, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile:
		b, err := aliasfile.NewBackend(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return b, func() error { return nil }, nil
	default:
		b, err := aliastable.NewBackend(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	}
}
