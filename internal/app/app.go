package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/markdave123-py/Condensa/internal/config"
	"github.com/markdave123-py/Condensa/internal/core/llm"
	"github.com/markdave123-py/Condensa/internal/core/processing_engine"
)

type App struct {
	LLM       *llm.GeminiLLM
	Processor *processing_engine.Processor
	Server    *Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	generator, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel, cfg.Temperature)
	if err != nil {
		return nil, err
	}
	logger.Info("generation client initialized", zap.String("model", cfg.GenModel))

	procCfg := processing_engine.DefaultProcessingConfig()
	procCfg.MaxFileSize = cfg.MaxFileSize
	procCfg.TextExtractLimit = cfg.TextExtractLimit
	procCfg.Model = cfg.GenModel
	procCfg.Temperature = cfg.Temperature

	processor := processing_engine.NewProcessor(generator, procCfg, logger)

	server := NewServer(cfg, processor, logger)

	return &App{LLM: generator, Processor: processor, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
}
