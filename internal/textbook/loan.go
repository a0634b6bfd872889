package textbook

import (
	_ "embed"
	"fmt"

	"github.com/pbanos/statlearn/dataset"
	"github.com/pbanos/statlearn/feature"
	featureyaml "github.com/pbanos/statlearn/feature/yaml"
)

// LoanLabel is the name of the label feature of the loan dataset.
const LoanLabel = "Category"

//go:embed loan.yml
var loanMetadata []byte

var loanRows = [][5]string{
	{"Young", "No", "No", "Ordinary", "No"},
	{"Young", "No", "No", "Good", "No"},
	{"Young", "Yes", "No", "Good", "Yes"},
	{"Young", "Yes", "Yes", "Ordinary", "Yes"},
	{"Young", "No", "No", "Ordinary", "No"},

	{"Middle", "No", "No", "Ordinary", "No"},
	{"Middle", "No", "No", "Good", "No"},
	{"Middle", "Yes", "Yes", "Good", "Yes"},
	{"Middle", "No", "Yes", "Nice", "Yes"},
	{"Middle", "No", "Yes", "Nice", "Yes"},

	{"Old", "No", "Yes", "Nice", "Yes"},
	{"Old", "No", "Yes", "Good", "Yes"},
	{"Old", "Yes", "No", "Good", "Yes"},
	{"Old", "Yes", "No", "Nice", "Yes"},
	{"Old", "No", "No", "Ordinary", "No"},
}

/*
Loan holds the loan application dataset: the 4 features describing an
applicant (Age, Work, House and Credit, in that order), the label feature
telling whether the loan was granted and the 15 labeled records.
*/
type Loan struct {
	Features []*feature.DiscreteFeature
	Label    *feature.DiscreteFeature
	Dataset  *dataset.Dataset[feature.Tuple, feature.Value]
}

/*
LoanApplications returns the loan application dataset, building its
features from the embedded metadata.
*/
func LoanApplications() (*Loan, error) {
	features, err := featureyaml.ReadFeatures(loanMetadata)
	if err != nil {
		return nil, fmt.Errorf("reading loan metadata: %v", err)
	}
	result := &Loan{Dataset: dataset.New[feature.Tuple, feature.Value]()}
	for _, f := range features {
		if f.Name() == LoanLabel {
			result.Label = f
			continue
		}
		result.Features = append(result.Features, f)
	}
	if result.Label == nil {
		return nil, fmt.Errorf("loan metadata does not define label feature %s", LoanLabel)
	}
	for i, row := range loanRows {
		tuple := make(feature.Tuple, 0, len(result.Features))
		for j, f := range result.Features {
			v, err := f.ValueNamed(row[j])
			if err != nil {
				return nil, fmt.Errorf("loan record %d: %w", i, err)
			}
			tuple = append(tuple, v)
		}
		label, err := result.Label.ValueNamed(row[len(row)-1])
		if err != nil {
			return nil, fmt.Errorf("loan record %d: %w", i, err)
		}
		result.Dataset.Insert(tuple, label)
	}
	return result, nil
}

/*
Feature takes the name of a feature of the loan dataset and returns it or
nil if there is none with that name.
*/
func (l *Loan) Feature(name string) *feature.DiscreteFeature {
	for _, f := range l.Features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
