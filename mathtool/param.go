package mathtool

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParamType is the declared numeric domain of a tool parameter. The
// values double as JSON Schema type names.
type ParamType string

const (
	// Real accepts any finite JSON number.
	Real ParamType = "number"
	// Integer accepts JSON numbers with no fractional part within the
	// exactly representable float64 integer range.
	Integer ParamType = "integer"
)

// maxExactInt is the largest integer magnitude a float64 represents
// exactly (2^53).
const maxExactInt = 1 << 53

// Param declares a single numeric tool parameter: its name, type,
// documentation, and an optional validation predicate that runs before
// the tool computes anything.
type Param struct {
	Name        string
	Type        ParamType
	Description string

	// Optional parameters fall back to Default when absent from a call.
	Optional bool
	Default  float64

	// Check rejects values outside the parameter's declared domain.
	// It runs after type coercion, so Integer parameters always see
	// integral values.
	Check func(v float64) error
}

// NonNegative is a Check predicate requiring v >= 0.
func NonNegative(v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: must be non-negative, got %s", ErrInvalidArgument, formatReal(v))
	}
	return nil
}

// Positive is a Check predicate requiring v > 0.
func Positive(v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: must be positive, got %s", ErrInvalidArgument, formatReal(v))
	}
	return nil
}

// Args holds coerced, validated arguments keyed by parameter name.
// Values for Integer parameters are guaranteed integral.
type Args map[string]float64

// Real returns the named argument as a float64.
func (a Args) Real(name string) float64 { return a[name] }

// Int returns the named argument as an int64.
func (a Args) Int(name string) int64 { return int64(a[name]) }

// CoerceArgs validates raw call arguments against the declared
// parameters and returns the coerced argument set. Every violation
// fails with ErrInvalidArgument naming the offending parameter, and
// nothing is computed past the first violation.
func CoerceArgs(params []Param, raw map[string]any) (Args, error) {
	args := make(Args, len(params))
	for _, p := range params {
		v, ok := raw[p.Name]
		if !ok || v == nil {
			if p.Optional {
				args[p.Name] = p.Default
				continue
			}
			return nil, fmt.Errorf("%w: missing required parameter %q", ErrInvalidArgument, p.Name)
		}

		f, err := numberValue(v)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q %v", ErrInvalidArgument, p.Name, err)
		}
		if p.Type == Integer {
			if f != math.Trunc(f) {
				return nil, fmt.Errorf("%w: parameter %q must be an integer, got %s", ErrInvalidArgument, p.Name, formatReal(f))
			}
			if math.Abs(f) > maxExactInt {
				return nil, fmt.Errorf("%w: parameter %q exceeds the exact integer range", ErrInvalidArgument, p.Name)
			}
		}
		if p.Check != nil {
			if err := p.Check(f); err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
		}
		args[p.Name] = f
	}
	return args, nil
}

// numberValue converts the JSON-decoded forms a numeric argument can
// arrive in. NaN and infinities are rejected; JSON cannot carry them,
// so they only show up through direct API misuse.
func numberValue(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be a number, got %q", n.String())
		}
		f = parsed
	default:
		return 0, fmt.Errorf("must be a number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("must be a finite number")
	}
	return f, nil
}
