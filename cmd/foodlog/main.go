package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vbonduro/foodlog/internal/cli"
	"github.com/vbonduro/foodlog/internal/config"
	"github.com/vbonduro/foodlog/internal/db"
	"github.com/vbonduro/foodlog/internal/logging"
	"github.com/vbonduro/foodlog/internal/nutrition"
	claudenutrition "github.com/vbonduro/foodlog/internal/nutrition/claude"
	gemininutrition "github.com/vbonduro/foodlog/internal/nutrition/gemini"
	ollamanutrition "github.com/vbonduro/foodlog/internal/nutrition/ollama"
	"github.com/vbonduro/foodlog/internal/recordstore"
	"github.com/vbonduro/foodlog/internal/recordstore/notion"
	"github.com/vbonduro/foodlog/internal/service"
	"github.com/vbonduro/foodlog/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ ERROR: Initialization failed. %v\n", err)
		os.Exit(1)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	if err := run(cfg, logger); err != nil {
		logger.Error("foodlog failed", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, storeName, closeStore, err := newRecordStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.NewMealService(newNutritionAnalyzer(cfg, logger), records, logger)
	app := cli.New(cli.NewPrompter(os.Stdin, os.Stdout), svc, os.Stdout, storeName)
	return app.Run(ctx)
}

func newNutritionAnalyzer(cfg *config.Config, logger *slog.Logger) nutrition.Analyzer {
	switch cfg.InferenceBackend {
	case "claude":
		logger.Info("using Claude inference backend", "model", cfg.ClaudeModel)
		return claudenutrition.NewClaudeAnalyzer(cfg.ClaudeAPIKey, cfg.ClaudeModel)
	case "ollama":
		logger.Info("using Ollama inference backend", "host", cfg.OllamaHost, "model", cfg.OllamaModel)
		return ollamanutrition.NewOllamaAnalyzer(cfg.OllamaHost, cfg.OllamaModel)
	default:
		logger.Info("using Gemini inference backend", "model", cfg.GeminiModel)
		return gemininutrition.NewGeminiAnalyzer(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}

// newRecordStore returns the configured store, a display name for user
// messages, and a func releasing its resources.
func newRecordStore(cfg *config.Config, logger *slog.Logger) (recordstore.RecordStore, string, func(), error) {
	switch cfg.StoreBackend {
	case "sqlite":
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to open database: %w", err)
		}
		logger.Info("using SQLite record store", "path", cfg.DBPath)
		closeDB := func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
		return store.NewMealStore(database), "SQLite", closeDB, nil
	default:
		logger.Info("using Notion record store", "database_id", cfg.NotionDatabaseID)
		return notion.NewNotionStore(cfg.NotionToken, cfg.NotionDatabaseID), "Notion", func() {}, nil
	}
}
