package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/start94/-Code-of-Babel/internal/domain/service"
	"github.com/start94/-Code-of-Babel/internal/infrastructure/metrics"
)

// Error definitions for the language usecase
var (
	ErrEmptyText = errors.New("text must not be empty")
	ErrInference = errors.New("language recognition failed")
)

// IdentifyInput represents the input for a language identification request
type IdentifyInput struct {
	Text string `json:"text"`
}

// IdentifyOutput represents the identification result returned to the caller
type IdentifyOutput struct {
	LanguageCode string  `json:"language_code"`
	Confidence   float64 `json:"confidence"`
}

// PredictionCache is an optional read-through cache for predictions.
// Implementations must tolerate concurrent use.
type PredictionCache interface {
	Get(ctx context.Context, text string) (*service.Prediction, bool)
	Set(ctx context.Context, text string, pred *service.Prediction)
}

// LanguageUsecase defines the interface for the identification pipeline
type LanguageUsecase interface {
	Identify(ctx context.Context, input *IdentifyInput) (*IdentifyOutput, error)
	Languages(ctx context.Context) []string
}

type languageUsecase struct {
	classifier service.Classifier
	cache      PredictionCache
	metrics    *metrics.Metrics
	log        *zap.Logger
}

// NewLanguageUsecase creates a new language usecase. cache and m may be nil.
func NewLanguageUsecase(classifier service.Classifier, cache PredictionCache, m *metrics.Metrics, log *zap.Logger) LanguageUsecase {
	return &languageUsecase{
		classifier: classifier,
		cache:      cache,
		metrics:    m,
		log:        log,
	}
}

// Identify runs the request pipeline: trim, validate, classify, audit.
// Every call emits exactly one audit log line: WARN for rejected input,
// INFO for a served prediction, ERROR for an inference failure.
func (u *languageUsecase) Identify(ctx context.Context, input *IdentifyInput) (*IdentifyOutput, error) {
	trimmed := strings.TrimSpace(input.Text)
	if trimmed == "" {
		u.log.Warn("empty text rejected", zap.String("raw_text", input.Text))
		u.metrics.ObservePrediction("none", metrics.OutcomeRejected, 0)
		return nil, ErrEmptyText
	}

	start := time.Now()

	if u.cache != nil {
		if pred, ok := u.cache.Get(ctx, trimmed); ok {
			u.audit(trimmed, pred, true)
			u.metrics.ObservePrediction(pred.LanguageCode, metrics.OutcomeCacheHit, time.Since(start))
			return &IdentifyOutput{LanguageCode: pred.LanguageCode, Confidence: pred.Confidence}, nil
		}
	}

	pred, err := u.classifier.Classify(ctx, trimmed)
	if err != nil {
		u.log.Error("inference failed", zap.String("text", trimmed), zap.Error(err))
		u.metrics.ObservePrediction("none", metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}

	if u.cache != nil {
		u.cache.Set(ctx, trimmed, pred)
	}

	u.audit(trimmed, pred, false)
	u.metrics.ObservePrediction(pred.LanguageCode, metrics.OutcomeOK, time.Since(start))

	return &IdentifyOutput{LanguageCode: pred.LanguageCode, Confidence: pred.Confidence}, nil
}

// Languages returns the class labels of the loaded model.
func (u *languageUsecase) Languages(_ context.Context) []string {
	return u.classifier.Languages()
}

func (u *languageUsecase) audit(text string, pred *service.Prediction, cached bool) {
	u.log.Info("language identified",
		zap.String("text", text),
		zap.String("language_code", pred.LanguageCode),
		zap.Float64("confidence", pred.Confidence),
		zap.Bool("cached", cached),
	)
}
