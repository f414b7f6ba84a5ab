package app

import (
	"context"
	"fmt"
	"log/slog"

	redisClient "github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	entryrepo "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres/wordentry"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/speech"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/woerter"
	redisadapter "github.com/heartmarshall/wortschatz-backend/internal/adapter/redis"
	"github.com/heartmarshall/wortschatz-backend/internal/app/generator"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/wordentry"
)

// OpenRedis connects to Redis. It returns a nil client when Redis is not
// configured.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redisClient.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	return redisadapter.NewClient(ctx, redisadapter.Config{URL: cfg.URL, KeyPrefix: cfg.KeyPrefix})
}

// NewWoerterProvider builds the dictionary site client. rdb may be nil.
func NewWoerterProvider(cfg *config.Config, rdb *redisClient.Client, logger *slog.Logger) *woerter.Provider {
	var cache woerter.PageCache
	if rdb != nil {
		cache = redisadapter.NewPageCache(rdb, cfg.Redis.KeyPrefix, cfg.Redis.PageTTL)
	}

	return woerter.NewProvider(woerter.Config{
		BaseURL:    cfg.Woerter.BaseURL,
		Timeout:    cfg.Woerter.Timeout,
		MinDelay:   cfg.Woerter.MinDelay,
		MaxDelay:   cfg.Woerter.MaxDelay,
		RetryDelay: cfg.Woerter.RetryDelay,
	}, cache, logger)
}

// NewWordEntryService wires the word entry service over pool.
func NewWordEntryService(pool *pgxpool.Pool, provider *woerter.Provider, logger *slog.Logger) *wordentry.Service {
	return wordentry.NewService(logger, entryrepo.New(pool), provider, postgres.NewTxManager(pool))
}

// NewRegistry selects the Redis registry when rdb is set, the JSON file
// registry otherwise.
func NewRegistry(cfg *config.Config, rdb *redisClient.Client) generator.Registry {
	if rdb != nil {
		return redisadapter.NewRegistry(rdb, cfg.Redis.KeyPrefix)
	}
	return generator.NewFileRegistry(cfg.Generator.RegistryFile)
}

// NewPipeline wires the content generation pipeline.
func NewPipeline(ctx context.Context, cfg *config.Config, rdb *redisClient.Client, logger *slog.Logger) (*generator.Pipeline, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("llm.api_key (ANTHROPIC_API_KEY) is required for generation")
	}
	if cfg.Speech.APIKey == "" {
		return nil, fmt.Errorf("speech.api_key (GEMINI_API_KEY) is required for generation")
	}

	dialogs := llm.NewDialogGenerator(llm.Config{
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	}, logger)

	model, err := speech.NewGeminiModel(ctx, cfg.Speech.APIKey, cfg.Speech.Model, "")
	if err != nil {
		return nil, err
	}
	synth := speech.NewSynthesizer(model, logger,
		speech.WithConcurrency(cfg.Speech.Concurrency),
		speech.WithRequestTimeout(cfg.Speech.Timeout),
	)

	return generator.NewPipeline(logger,
		generator.Config{
			WordsFile:      cfg.Generator.WordsFile,
			OutputDir:      cfg.Generator.OutputDir,
			ChunkMaxLength: cfg.Generator.ChunkMaxLength,
			MinDialogLines: cfg.Generator.MinDialogLines,
		},
		NewRegistry(cfg, rdb),
		NewWoerterProvider(cfg, rdb, logger),
		dialogs,
		synth,
	), nil
}
