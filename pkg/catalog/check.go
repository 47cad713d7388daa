package catalog

import (
	"fmt"
	"math"
)

// Check validates a candidate value against the parameter's type and bounds.
// Returns nil if the value is inside the legal domain.
func (ps ParameterSpec) Check(value any) error {
	switch ps.ValueType {
	case TypeFloat:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("parameter %q expects a float, got %T", ps.Name, value)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("parameter %q value is not finite", ps.Name)
		}
		return ps.checkBounds(f)

	case TypeInt:
		i, ok := asInt(value)
		if !ok {
			return fmt.Errorf("parameter %q expects an int, got %T", ps.Name, value)
		}
		return ps.checkBounds(float64(i))

	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("parameter %q expects a bool, got %T", ps.Name, value)
		}
		return nil

	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("parameter %q expects a string, got %T", ps.Name, value)
		}
		return nil

	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("parameter %q expects an enum string, got %T", ps.Name, value)
		}
		for _, allowed := range ps.EnumValues {
			if s == allowed {
				return nil
			}
		}
		return fmt.Errorf("parameter %q value %q is not one of %v", ps.Name, s, ps.EnumValues)

	default:
		return fmt.Errorf("parameter %q has unknown value type %q", ps.Name, ps.ValueType)
	}
}

func (ps ParameterSpec) checkBounds(v float64) error {
	if ps.Min != nil && v < *ps.Min {
		return fmt.Errorf("parameter %q value %v is below minimum %v", ps.Name, v, *ps.Min)
	}
	if ps.Max != nil && v > *ps.Max {
		return fmt.Errorf("parameter %q value %v is above maximum %v", ps.Name, v, *ps.Max)
	}
	return nil
}

// asFloat accepts the numeric representations that JSON and YAML decoding
// produce for float parameters.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// asInt accepts integral values, including JSON-decoded float64 values that
// carry no fractional part.
func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}
