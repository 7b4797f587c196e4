package classifier

import (
	"fmt"
	"math"
)

// naiveBayesModel scores texts with a multinomial naive Bayes over
// character n-grams. All tables are read-only after construction.
type naiveBayesModel struct {
	art *Artifact
}

func newNaiveBayesModel(art *Artifact) *naiveBayesModel {
	return &naiveBayesModel{art: art}
}

func (m *naiveBayesModel) Classes() []string {
	return m.art.Classes
}

// PredictProba returns the most probable class and its probability.
// Ties resolve to the lowest class index (first maximum); this order is
// implementation-defined and not guaranteed stable.
func (m *naiveBayesModel) PredictProba(text string) (string, float64, error) {
	grams := extractNgrams(text, m.art.NgramMin, m.art.NgramMax)
	if len(grams) == 0 {
		return "", 0, fmt.Errorf("input shorter than minimum n-gram length %d", m.art.NgramMin)
	}

	scores := append([]float64(nil), m.art.ClassLogPrior...)
	for _, gram := range grams {
		if probs, ok := m.art.FeatureLogProb[gram]; ok {
			for i := range scores {
				scores[i] += probs[i]
			}
		} else {
			for i := range scores {
				scores[i] += m.art.UnseenLogProb[i]
			}
		}
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	// Softmax normalized against the maximum, so the winner's
	// probability is 1/sum and stays within (0,1].
	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - scores[best])
	}

	return m.art.Classes[best], 1 / sum, nil
}
