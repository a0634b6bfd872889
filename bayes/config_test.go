package bayes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Dims: 2, Classes: 2, MaxFeatureValue: 3, Lambda: 1}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero dims", func(c *Config) { c.Dims = 0 }},
		{"zero classes", func(c *Config) { c.Classes = 0 }},
		{"negative max feature value", func(c *Config) { c.MaxFeatureValue = -1 }},
		{"negative lambda", func(c *Config) { c.Lambda = -0.5 }},
		{"cardinalities length", func(c *Config) { c.Cardinalities = []int{3} }},
		{"non positive cardinality", func(c *Config) { c.Cardinalities = []int{3, 0} }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfigDefaultCardinalities(t *testing.T) {
	cfg := Config{Dims: 3, Classes: 2, MaxFeatureValue: 5}
	assert.Equal(t, []int{5, 5, 5}, cfg.cardinalities())

	cfg.Cardinalities = []int{1, 2, 3}
	cards := cfg.cardinalities()
	cards[0] = 9
	assert.Equal(t, []int{1, 2, 3}, cfg.Cardinalities)
}
