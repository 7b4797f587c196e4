package classifier

import (
	"context"

	"github.com/start94/-Code-of-Babel/internal/domain/service"
)

// Gateway wraps the loaded model behind the domain Classifier contract.
// The variant is fixed at load time: exactly one of prob or plain is set.
// Both scorers only read tables built during Load, so Classify is safe
// for concurrent use.
type Gateway struct {
	prob  service.ProbabilisticModel
	plain service.PlainModel
}

// Load reads a model artifact from path and wraps it in a Gateway.
// Artifacts with calibrated probabilities become the probabilistic
// variant; rank models become the plain variant with confidence pinned
// to 1.0.
func Load(path string) (*Gateway, error) {
	art, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}

	switch art.ModelType {
	case ModelTypeNaiveBayes:
		return &Gateway{prob: newNaiveBayesModel(art)}, nil
	default:
		return &Gateway{plain: newRankModel(art)}, nil
	}
}

// NewProbabilisticGateway wraps a model that exposes class probabilities.
func NewProbabilisticGateway(m service.ProbabilisticModel) *Gateway {
	return &Gateway{prob: m}
}

// NewPlainGateway wraps a label-only model.
func NewPlainGateway(m service.PlainModel) *Gateway {
	return &Gateway{plain: m}
}

// Classify identifies the language of text. Model errors propagate
// unwrapped; the gateway performs no retry.
func (g *Gateway) Classify(_ context.Context, text string) (*service.Prediction, error) {
	if g.prob != nil {
		label, confidence, err := g.prob.PredictProba(text)
		if err != nil {
			return nil, err
		}
		return &service.Prediction{LanguageCode: label, Confidence: confidence}, nil
	}

	label, err := g.plain.Predict(text)
	if err != nil {
		return nil, err
	}
	return &service.Prediction{LanguageCode: label, Confidence: 1.0}, nil
}

// Languages returns the trained class labels.
func (g *Gateway) Languages() []string {
	if g.prob != nil {
		return g.prob.Classes()
	}
	return g.plain.Classes()
}
