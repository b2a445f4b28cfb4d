package main

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"go-wavecleanup/analysis"
	"go-wavecleanup/config"
	"go-wavecleanup/db"
	"go-wavecleanup/eventbus"
	"go-wavecleanup/geocode"
	"go-wavecleanup/mlmodel"
	"go-wavecleanup/mockdata"
	"go-wavecleanup/summarization"
)

// newStore uses Firestore when credentials are configured, memory otherwise.
func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Store, error) {
	if cfg.FirebaseCredentials == "" {
		logger.Warn("FIREBASE_CREDENTIALS not set, submissions are kept in memory")
		return db.NewMemoryStore(), nil
	}
	store, err := db.InitFirestore(ctx, cfg.FirebaseCredentials)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore: %w", err)
	}
	logger.Info("storing submissions in Firestore")
	return store, nil
}

func newPublisher(cfg *config.Config, logger *zap.Logger) (eventbus.Publisher, error) {
	if cfg.NatsURL == "" {
		return eventbus.NopPublisher{}, nil
	}
	return eventbus.NewPublisher(cfg.NatsURL, logger)
}

func newAnalyzer(cfg *config.Config) (analysis.Analyzer, error) {
	switch cfg.Analyzer {
	case config.AnalyzerMock:
		return analysis.NewMockAnalyzer(cfg.AnalysisDelay), nil
	case config.AnalyzerMLModel:
		return mlmodel.NewClient(cfg.MLModelURL), nil
	case config.AnalyzerOpenAI:
		return mlmodel.NewOpenAIAnalyzer(openai.NewClient(cfg.OpenAIAPIKey)), nil
	default:
		return nil, fmt.Errorf("unknown analyzer %q", cfg.Analyzer)
	}
}

// newLocator returns nil without Maps credentials; results then keep the location as text.
func newLocator(cfg *config.Config, logger *zap.Logger) *geocode.Locator {
	if cfg.MapsAPIKey == "" {
		return nil
	}
	g, err := geocode.NewMapsGeocoder(cfg.MapsAPIKey)
	if err != nil {
		logger.Warn("geocoding disabled", zap.Error(err))
		return nil
	}
	return geocode.NewLocator(g, mockdata.Hotspots(), logger)
}

func newSummarizer(cfg *config.Config) summarization.Summarizer {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	return summarization.NewOpenAISummarizer(openai.NewClient(cfg.OpenAIAPIKey))
}
