package models

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrInvalidConfig is returned for unreadable or out-of-range run configurations
var ErrInvalidConfig = errors.New("invalid run config")

// Aggregate selects how per-blueprint results are combined
type Aggregate string

const (
	// AggregateQuality sums blueprint ID times geodes
	AggregateQuality Aggregate = "quality"
	// AggregateProduct multiplies the geode counts
	AggregateProduct Aggregate = "product"
)

// Run presets
const (
	DefaultHorizon  = 24
	ExtendedHorizon = 32
	ExtendedLimit   = 3
)

// RunConfig controls one batch run
type RunConfig struct {
	Horizon        int       // minutes available per blueprint
	Limit          int       // only the first Limit blueprints, 0 = all
	Aggregate      Aggregate // how results are combined
	DisablePruning bool      // exhaustive search, used as an oracle
}

// DefaultRunConfig returns the standard run: every blueprint, 24 minutes, quality sum
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Horizon:   DefaultHorizon,
		Aggregate: AggregateQuality,
	}
}

// ExtendedRunConfig returns the longer variant: first 3 blueprints, 32 minutes, geode product
func ExtendedRunConfig() RunConfig {
	return RunConfig{
		Horizon:   ExtendedHorizon,
		Limit:     ExtendedLimit,
		Aggregate: AggregateProduct,
	}
}

// LoadRunConfig overlays the settings in path onto base.
// Files ending in .json are read as JSON, anything else as a binary
// protobuf google.protobuf.Struct.
func LoadRunConfig(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}

	var fields map[string]any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		fields, err = jsonFields(data)
	} else {
		fields, err = protoFields(data)
	}
	if err != nil {
		return base, err
	}

	return applyFields(base, fields)
}

func jsonFields(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidConfig)
	}

	fields := make(map[string]any)
	root.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = value.Value()
		return true
	})
	return fields, nil
}

func protoFields(data []byte) (map[string]any, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: invalid protobuf: %v", ErrInvalidConfig, err)
	}
	return s.AsMap(), nil
}

// MarshalRunConfig encodes cfg as a binary protobuf Struct readable by LoadRunConfig
func MarshalRunConfig(cfg RunConfig) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"horizon":   cfg.Horizon,
		"limit":     cfg.Limit,
		"aggregate": string(cfg.Aggregate),
		"prune":     !cfg.DisablePruning,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func applyFields(cfg RunConfig, fields map[string]any) (RunConfig, error) {
	// The preset goes first so explicit keys in the same file win over it.
	if v, ok := fields["extended"]; ok {
		extended, ok := v.(bool)
		if !ok {
			return cfg, fmt.Errorf("%w: extended must be a boolean", ErrInvalidConfig)
		}
		if extended {
			cfg = ExtendedRunConfig()
		}
	}

	for key, v := range fields {
		var err error
		switch key {
		case "extended":
		case "horizon":
			cfg.Horizon, err = intField(key, v)
		case "limit":
			cfg.Limit, err = intField(key, v)
		case "aggregate":
			s, ok := v.(string)
			if !ok {
				err = fmt.Errorf("%w: aggregate must be a string", ErrInvalidConfig)
			}
			cfg.Aggregate = Aggregate(s)
		case "prune":
			prune, ok := v.(bool)
			if !ok {
				err = fmt.Errorf("%w: prune must be a boolean", ErrInvalidConfig)
			}
			cfg.DisablePruning = !prune
		default:
			err = fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
		}
		if err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func intField(key string, v any) (int, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidConfig, key)
	}
	return int(f), nil
}

// ValidateRunConfig checks that the run can be executed
func ValidateRunConfig(cfg RunConfig) error {
	if cfg.Horizon < 1 {
		return fmt.Errorf("%w: horizon must be at least 1, got %d", ErrInvalidConfig, cfg.Horizon)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidConfig, cfg.Limit)
	}
	switch cfg.Aggregate {
	case AggregateQuality, AggregateProduct:
	default:
		return fmt.Errorf("%w: unknown aggregate %q", ErrInvalidConfig, cfg.Aggregate)
	}
	return nil
}
