package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/cost"
)

var errBadConfig = errors.New("seqalign: invalid configuration")

// Config is the app-wide settings struct, unmarshalled from viper (flags,
// SEQALIGN_* environment, optional YAML file).
type Config struct {
	// gap penalty delta
	Gap int `mapstructure:"gap"`

	// symbols of the cost table, in any order
	Alphabet string `mapstructure:"alphabet"`

	// substitution costs keyed by symbol pair, e.g. "AC": 110
	Costs map[string]int `mapstructure:"costs"`

	// Hirschberg leaf bound
	BaseCase int `mapstructure:"base-case"`

	// run the two split scans of every Hirschberg level concurrently
	Parallel bool `mapstructure:"parallel"`

	// concurrent files in batch mode
	Workers int `mapstructure:"workers"`

	// 0=error, 1=warn, 2=info, 3=debug
	LogLevel int `mapstructure:"log-level"`

	// text or json
	LogFormat string `mapstructure:"log-format"`
}

// setDefaults registers the defaults that have no flag.
func setDefaults(v *viper.Viper) {
	v.SetDefault("costs", cost.DNA().Pairs())
}

// loadConfig decodes the viper state into a Config.
func loadConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}

	return c, nil
}

// Model builds the cost model. Viper lowercases map keys, so pair keys are
// matched back to alphabet symbols case-insensitively.
func (c Config) Model() (*cost.Model, error) {
	symbols := make(map[byte]byte, len(c.Alphabet))
	for i := 0; i < len(c.Alphabet); i++ {
		s := c.Alphabet[i]
		l := lower(s)
		if prev, dup := symbols[l]; dup && prev != s {
			return nil, fmt.Errorf("alphabet %q mixes cases of %q: %w", c.Alphabet, s, errBadConfig)
		}
		symbols[l] = s
	}

	pairs := make(map[string]int, len(c.Costs))
	for key, v := range c.Costs {
		if len(key) == 2 {
			key = string([]byte{restore(symbols, key[0]), restore(symbols, key[1])})
		}
		pairs[key] = v
	}

	return cost.FromPairs(c.Alphabet, pairs, c.Gap)
}

// alignOptions maps the engine settings onto align options.
func (c Config) alignOptions(method align.Method) []align.Option {
	opts := []align.Option{align.WithMethod(method), align.WithBaseCase(c.BaseCase)}
	if c.Parallel {
		opts = append(opts, align.WithParallelScan())
	}
	return opts
}

func lower(b byte) byte {
	return strings.ToLower(string(b))[0]
}

func restore(symbols map[byte]byte, b byte) byte {
	if s, ok := symbols[lower(b)]; ok {
		return s
	}
	return b
}
