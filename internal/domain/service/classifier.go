package service

import "context"

// Prediction is the result of identifying the language of a text.
type Prediction struct {
	LanguageCode string  `json:"language_code"`
	Confidence   float64 `json:"confidence"`
}

// Classifier is the model gateway contract used by the request pipeline.
type Classifier interface {
	// Classify identifies the language of a single non-empty text.
	Classify(ctx context.Context, text string) (*Prediction, error)

	// Languages returns the class labels the loaded model was trained on.
	Languages() []string
}

// ProbabilisticModel is a loaded model that exposes a probability
// distribution over its trained classes.
type ProbabilisticModel interface {
	Classes() []string
	PredictProba(text string) (label string, confidence float64, err error)
}

// PlainModel is a loaded model that exposes a label only. Callers report
// its confidence as exactly 1.0.
type PlainModel interface {
	Classes() []string
	Predict(text string) (label string, err error)
}
