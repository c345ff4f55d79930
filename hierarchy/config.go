package hierarchy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dominance/decompose"
	"github.com/katalvlaran/dominance/dominance"
	"github.com/katalvlaran/dominance/matrix"
)

// ErrInvalidConfig wraps every configuration decoding or validation failure.
var ErrInvalidConfig = errors.New("hierarchy: invalid config")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Config selects the thresholds, score variants and parallelism of an
// Analyzer.
type Config struct {
	// NoEdgeValue is the largest weight not treated as an edge by the
	// ordering and the transitivity index.
	NoEdgeValue float64 `yaml:"no_edge_value" validate:"gte=0"`

	// SIndexPower is the exponent p of s_index = Σ C^p / Σ W^p.
	SIndexPower int `yaml:"s_index_power" validate:"oneof=1 2"`

	// DavidsMode is the David's Score variant exported as normDS (0..4).
	DavidsMode int `yaml:"davids_mode" validate:"gte=0,lte=4"`

	// BBS bounds the BBS fixed-point iteration.
	BBS BBSConfig `yaml:"bbs"`

	// Methods lists the dominance scores to compute, by export name.
	Methods []dominance.Method `yaml:"methods" validate:"unique,dive,oneof=normDS BBS LDI rowsum winaboveavg loseaboveavg"`

	// Concurrency caps parallel analyses in AnalyzeBatch; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency" validate:"gte=0,lte=256"`
}

// BBSConfig holds the BBS iteration limits.
type BBSConfig struct {
	MaxIterations int     `yaml:"max_iterations" validate:"gte=1,lte=10000"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
}

// DefaultConfig returns the reference settings: edges are positive weights,
// linear s_index, max–min normalized David's Score, 30 BBS rounds to 1e-6,
// every registered score.
func DefaultConfig() Config {
	return Config{
		NoEdgeValue: matrix.DefaultNoEdgeValue,
		SIndexPower: decompose.DefaultSIndexPower,
		DavidsMode:  int(dominance.MaxMinNormalized),
		BBS: BBSConfig{
			MaxIterations: dominance.DefaultMaxIterations,
			Tolerance:     dominance.DefaultTolerance,
		},
		Methods: dominance.AllMethods(),
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected; omitted keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decode: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its documented range.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
