package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pbanos/statlearn/bayes"
	"github.com/pbanos/statlearn/internal/textbook"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type bayesCmdConfig struct {
	*rootCmdConfig
	lambda        float64
	cardinalities []int
	predict       []string
}

func bayesCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &bayesCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "bayes",
		Short: "Train a naive Bayes classifier on the weather dataset",
		Long:  `Train a naive Bayes classifier on the 15 samples of example 4.2, print its probability tables and classify a sample.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.merge(cmd)
			x, err := parseWeatherSample(config.predict)
			if err != nil {
				return err
			}
			cfg := bayes.Config{
				Dims:            textbook.WeatherDims,
				Classes:         textbook.WeatherClasses,
				MaxFeatureValue: textbook.WeatherMaxFeatureValue,
				Cardinalities:   config.cardinalities,
				Lambda:          config.lambda,
			}
			d := textbook.Weather()
			log.Debug().Int("records", d.Size()).Float64("lambda", cfg.Lambda).Msg("training classifier on weather dataset")
			classifier, err := bayes.New(d, cfg)
			if err != nil {
				return fmt.Errorf("building classifier: %w", err)
			}
			classifier.Train()
			out := cmd.OutOrStdout()
			printPriors(out, classifier)
			printConditions(out, classifier)
			return printPrediction(out, classifier, x, d)
		},
	}
	cmd.Flags().Float64VarP(&(config.lambda), "lambda", "l", 1, "smoothing parameter: 0 for maximum likelihood, 1 for Laplace smoothing")
	cmd.Flags().IntSliceVar(&(config.cardinalities), "cardinalities", nil, "number of values each feature may take (defaults to the maximum feature value for every feature)")
	cmd.Flags().StringSliceVarP(&(config.predict), "predict", "p", []string{"2", "S"}, "sample to classify, the second feature given as S, M or L")
	return cmd
}

func (bcc *bayesCmdConfig) merge(cmd *cobra.Command) {
	file := bcc.file
	if file == nil {
		return
	}
	if !cmd.Flags().Changed("lambda") && file.Bayes.Lambda != nil {
		bcc.lambda = *file.Bayes.Lambda
	}
	if !cmd.Flags().Changed("cardinalities") && len(file.Bayes.Cardinalities) > 0 {
		bcc.cardinalities = file.Bayes.Cardinalities
	}
	if !cmd.Flags().Changed("predict") && len(file.Bayes.Predict) > 0 {
		bcc.predict = file.Bayes.Predict
	}
}

func parseWeatherSample(values []string) ([]int, error) {
	if len(values) != textbook.WeatherDims {
		return nil, fmt.Errorf("sample must have %d features, got %d", textbook.WeatherDims, len(values))
	}
	x := make([]int, 0, len(values))
	for j, v := range values {
		v = strings.TrimSpace(v)
		if j == 1 {
			found := false
			for _, letter := range []int{textbook.S, textbook.M, textbook.L} {
				if strings.EqualFold(v, textbook.WeatherValueName(letter)) {
					x = append(x, letter)
					found = true
					break
				}
			}
			if found {
				continue
			}
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing feature %d of sample: %v", j+1, err)
		}
		x = append(x, n)
	}
	return x, nil
}

func weatherValue(j, v int) string {
	if j == 1 {
		return textbook.WeatherValueName(v)
	}
	return strconv.Itoa(v)
}

func printPriors(w io.Writer, c *bayes.Classifier) {
	fmt.Fprintln(w, "Prior probabilities")
	for k, p := range c.PriorProbability() {
		fmt.Fprintf(w, "P(Y=%d) = %.6f\n", textbook.WeatherLabel(k), p)
	}
	fmt.Fprintln(w)
}

func printConditions(w io.Writer, c *bayes.Classifier) {
	fmt.Fprintln(w, "Conditional probabilities")
	for k, byFeature := range c.ConditionProbability() {
		for j, byValue := range byFeature {
			for v := 1; v < len(byValue); v++ {
				fmt.Fprintf(w, "P(X^%d=%s|Y=%d) = %.6f\n", j+1, weatherValue(j, v), textbook.WeatherLabel(k), byValue[v])
			}
		}
	}
	fmt.Fprintln(w)
}

func printPrediction(w io.Writer, c *bayes.Classifier, x []int, d *bayes.Dataset) error {
	class, err := c.Predict(x)
	if err != nil {
		return fmt.Errorf("classifying sample: %w", err)
	}
	highlight := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintln(w, "Prediction")
	fmt.Fprintf(w, "x=(%s, %s) -> y=%s\n", weatherValue(0, x[0]), weatherValue(1, x[1]), highlight(textbook.WeatherLabel(class)))
	p, err := c.Posterior(x)
	if err == nil {
		_, prob := p.PredictedClass()
		fmt.Fprintf(w, "posterior probability %.6f\n", prob)
	} else {
		log.Warn().Err(err).Msg("no posterior distribution for sample")
	}
	rate, err := c.Test(d)
	if err != nil {
		return fmt.Errorf("testing classifier: %w", err)
	}
	fmt.Fprintf(w, "training accuracy %.6f\n", rate)
	return nil
}
