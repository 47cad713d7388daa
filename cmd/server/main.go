package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/mineworks/grindflow/pkg/api"
	"github.com/mineworks/grindflow/pkg/catalog"
	"github.com/mineworks/grindflow/pkg/kpi"
	"github.com/mineworks/grindflow/pkg/logging"
	"github.com/mineworks/grindflow/pkg/metrics"
	"github.com/mineworks/grindflow/pkg/simrun"
)

func main() {
	cfgPort := flag.Int("port", 0, "HTTP server port (overrides GRINDFLOW_PORT)")
	catalogPath := flag.String("catalog", "", "site catalog YAML (overrides GRINDFLOW_CATALOG)")
	flag.Parse()

	cfg := api.LoadConfigFromEnv()
	if *cfgPort != 0 {
		cfg.Port = *cfgPort
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", logging.Error(err))
		os.Exit(1)
	}

	cat := catalog.Builtin()
	if cfg.CatalogPath != "" {
		if err := cat.LoadYAMLFile(cfg.CatalogPath); err != nil {
			logger.Error("failed to load site catalog", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("site catalog loaded",
			logging.String("path", cfg.CatalogPath),
			logging.Count(cat.Len()))
	}

	m := metrics.NewRegistry()

	kpiReg := kpi.NewRegistry(
		kpi.WithLogger(logger.With(logging.Component("kpi"))),
		kpi.WithUnknownKeyHook(m.RecordUnknownKPIKey),
	)

	goalStore, err := buildGoalStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open goal store", logging.Error(err))
		os.Exit(1)
	}

	sim := simrun.NewClient(cfg.SimServiceURL,
		simrun.WithLogger(logger.With(logging.Component("simrun"))))

	server := api.NewServer(cfg, cat, kpiReg, goalStore, sim, m, logger)
	if err := server.Start(); err != nil {
		logger.Error("server stopped", logging.Error(err))
		os.Exit(1)
	}
}

func buildGoalStore(cfg api.Config, logger logging.Logger) (kpi.GoalStore, error) {
	switch cfg.GoalStoreDriver {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := kpi.NewPGStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("goal store ready", logging.String("driver", "postgres"))
		return store, nil
	default:
		store, err := kpi.NewFileStore(cfg.GoalStoreDir)
		if err != nil {
			return nil, err
		}
		logger.Info("goal store ready",
			logging.String("driver", "file"),
			logging.String("dir", cfg.GoalStoreDir))
		return store, nil
	}
}
