package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

const configEnvVar = "STATLEARN_CONFIG"

// fileConfig holds the settings that can be given in a YAML configuration file.
// Command line flags prevail over them.
type fileConfig struct {
	LogLevel string `yaml:"logLevel"`
	Bayes    struct {
		Lambda        *float64 `yaml:"lambda"`
		Cardinalities []int    `yaml:"cardinalities"`
		Predict       []string `yaml:"predict"`
	} `yaml:"bayes"`
	Gain struct {
		Used []string `yaml:"used"`
	} `yaml:"gain"`
}

func readConfig(md []byte) (*fileConfig, error) {
	config := &fileConfig{}
	err := yaml.UnmarshalStrict(md, config)
	if err != nil {
		return nil, fmt.Errorf("parsing yml config: %v", err)
	}
	return config, nil
}

func readConfigFromFile(filepath string) (*fileConfig, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading config yml file %s: %v", filepath, err)
	}
	config, err := readConfig(md)
	if err != nil {
		err = fmt.Errorf("parsing config yml file %s: %v", filepath, err)
	}
	return config, err
}

/*
Load reads the configuration file given with the config flag or, when
not set, the one named by the STATLEARN_CONFIG environment variable. Without
any of them an empty configuration is used.
*/
func (rcc *rootCmdConfig) Load() error {
	path := rcc.configPath
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		rcc.file = &fileConfig{}
		return nil
	}
	config, err := readConfigFromFile(path)
	if err != nil {
		return err
	}
	rcc.file = config
	return nil
}
