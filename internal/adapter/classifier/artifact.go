package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model types understood by Load.
const (
	ModelTypeNaiveBayes = "naive_bayes"
	ModelTypeNgramRank  = "ngram_rank"
)

// Artifact is the on-disk representation of a trained language model.
// A naive_bayes artifact carries calibrated per-class log probabilities;
// an ngram_rank artifact carries ranked n-gram profiles and exposes no
// probability estimate.
type Artifact struct {
	FormatVersion int      `json:"format_version"`
	ModelID       string   `json:"model_id"`
	ModelType     string   `json:"model_type"`
	Classes       []string `json:"classes"`
	NgramMin      int      `json:"ngram_min"`
	NgramMax      int      `json:"ngram_max"`

	// naive_bayes parameters. Each value slice is indexed by class.
	ClassLogPrior  []float64            `json:"class_log_prior,omitempty"`
	FeatureLogProb map[string][]float64 `json:"feature_log_prob,omitempty"`
	UnseenLogProb  []float64            `json:"unseen_log_prob,omitempty"`

	// ngram_rank parameters: per-class n-grams ordered from most to
	// least frequent in the training corpus.
	Profiles map[string][]string `json:"profiles,omitempty"`
}

// ReadArtifact reads and validates a model artifact from disk.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if err := art.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	return &art, nil
}

func (a *Artifact) validate() error {
	if len(a.Classes) == 0 {
		return fmt.Errorf("no classes defined")
	}
	if a.NgramMin < 1 || a.NgramMax < a.NgramMin {
		return fmt.Errorf("bad n-gram range [%d,%d]", a.NgramMin, a.NgramMax)
	}

	switch a.ModelType {
	case ModelTypeNaiveBayes:
		if len(a.ClassLogPrior) != len(a.Classes) {
			return fmt.Errorf("class_log_prior has %d entries, want %d", len(a.ClassLogPrior), len(a.Classes))
		}
		if len(a.UnseenLogProb) != len(a.Classes) {
			return fmt.Errorf("unseen_log_prob has %d entries, want %d", len(a.UnseenLogProb), len(a.Classes))
		}
		for gram, probs := range a.FeatureLogProb {
			if len(probs) != len(a.Classes) {
				return fmt.Errorf("feature %q has %d log probs, want %d", gram, len(probs), len(a.Classes))
			}
		}
	case ModelTypeNgramRank:
		if len(a.Profiles) == 0 {
			return fmt.Errorf("no class profiles defined")
		}
		for _, class := range a.Classes {
			if len(a.Profiles[class]) == 0 {
				return fmt.Errorf("class %q has no profile", class)
			}
		}
	default:
		return fmt.Errorf("unknown model type %q", a.ModelType)
	}

	return nil
}
