package bayes

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/*
ErrNoEvidence is the error returned by Posterior when every class scores 0
for a sample, so no posterior distribution can be derived from the scores.
*/
const ErrNoEvidence = ClassifierError("no class has a non-zero score for the sample")

/*
Prediction represents the posterior distribution of the classes of a sample
according to a classifier.
*/
type Prediction struct {
	probabilities []float64
}

/*
Posterior takes a feature vector and returns the prediction obtained by
normalizing its class scores to sum 1, or the errors described for Scores.
ErrNoEvidence is returned when all scores are 0.
*/
func (c *Classifier) Posterior(x []int) (*Prediction, error) {
	scores, err := c.Scores(x)
	if err != nil {
		return nil, err
	}
	total := floats.Sum(scores)
	if total == 0 {
		return nil, ErrNoEvidence
	}
	floats.Scale(1/total, scores)
	return &Prediction{scores}, nil
}

/*
ProbabilityOf takes a class and returns its probability according to the
prediction, or 0 for classes outside the prediction.
*/
func (p *Prediction) ProbabilityOf(class int) float64 {
	if class < 0 || class >= len(p.probabilities) {
		return 0
	}
	return p.probabilities[class]
}

/*
Probabilities returns a copy of the probability of each class, indexed by
class.
*/
func (p *Prediction) Probabilities() []float64 {
	return append([]float64(nil), p.probabilities...)
}

/*
PredictedClass returns the most probable class, the lowest on ties, and its
probability
*/
func (p *Prediction) PredictedClass() (int, float64) {
	class := floats.MaxIdx(p.probabilities)
	return class, p.probabilities[class]
}

func (p *Prediction) String() string {
	return fmt.Sprintf("%v", p.probabilities)
}

/*
Test takes a dataset and returns the rate of its records whose label is the
class predicted for their features, or an error if any of them cannot be
classified.
*/
func (c *Classifier) Test(d *Dataset) (float64, error) {
	if d.Size() == 0 {
		return 0, ErrEmptyDataset
	}
	var hits float64
	for i, r := range d.Records() {
		class, err := c.Predict(r.Features)
		if err != nil {
			return 0, fmt.Errorf("predicting record %d: %w", i, err)
		}
		if class == r.Label {
			hits += 1.0
		}
	}
	return hits / float64(d.Size()), nil
}
