package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose    bool
	logLevel   string
	configPath string
	file       *fileConfig
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:          "statlearn",
		Short:        "statlearn is a tool to explore discrete statistical learning methods",
		Long:         `A tool to train naive Bayes classifiers and to evaluate the information gain of discrete features on the textbook datasets`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := config.Load()
			if err != nil {
				return err
			}
			return config.SetupLogging(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log debug information to STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.logLevel), "log-level", "", "log level: debug, info, warn or error (defaults to warn, or debug when verbose)")
	rootCmd.PersistentFlags().StringVarP(&(config.configPath), "config", "c", "", "path to a YAML configuration file (defaults to $"+configEnvVar+")")
	rootCmd.AddCommand(versionCmd(), bayesCmd(config), gainCmd(config))
	return rootCmd
}
