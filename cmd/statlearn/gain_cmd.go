package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pbanos/statlearn"
	"github.com/pbanos/statlearn/entropy"
	"github.com/pbanos/statlearn/internal/textbook"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type gainCmdConfig struct {
	*rootCmdConfig
	used []string
}

func gainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "gain",
		Short: "Rank the features of the loan dataset by information gain",
		Long:  `Compute the empirical entropy of the loan application dataset and the conditional entropy, information gain and gain ratio of every feature not yet used, then select the best one to split on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("used") && config.file != nil {
				config.used = config.file.Gain.Used
			}
			loan, err := textbook.LoanApplications()
			if err != nil {
				return err
			}
			candidates := statlearn.NewCandidates(loan.Features...)
			for _, name := range config.used {
				i := candidates.Lookup(name)
				if i < 0 {
					return fmt.Errorf("unknown feature %s, valid features are %v", name, loan.Features)
				}
				err = candidates.MarkUsed(i)
				if err != nil {
					return err
				}
			}
			log.Debug().Int("records", loan.Dataset.Size()).Int("candidates", candidates.Remaining()).Msg("ranking loan features")
			return printRanking(cmd.OutOrStdout(), loan, candidates)
		},
	}
	cmd.Flags().StringSliceVarP(&(config.used), "used", "u", nil, "features already used to split the dataset, excluded from the selection")
	return cmd
}

func printRanking(w io.Writer, loan *textbook.Loan, candidates *statlearn.Candidates) error {
	h, err := entropy.EmpiricalEntropy(loan.Dataset)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "H(D) = %.6f\n\n", h)
	ranking, err := statlearn.RankFeatures(loan.Dataset, candidates)
	if err != nil {
		return fmt.Errorf("selecting best feature: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FEATURE\tH(D|A)\tg(D,A)\tgR(D,A)")
	for _, s := range ranking {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\n", s.Feature.Name(), s.ConditionEntropy, s.InformationGain, s.GainRatio())
	}
	err = tw.Flush()
	if err != nil {
		return err
	}
	best := ranking[0]
	highlight := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(w, "\nbest feature: %s (position %d)\n", highlight(best.Feature.Name()), best.Index)
	return nil
}
