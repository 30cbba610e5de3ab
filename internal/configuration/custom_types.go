package configuration

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Optional is a generic container for optional configuration values.
type Optional[T any] struct {
	// Value holds the actual as unmarshalled.
	Value T
	// Present indicates if the value was present in the configuration.
	Present bool
	// RuntimeOverride indicates if the value was overridden at runtime.
	RuntimeOverride bool
}

// Get returns the value if present or overridden, otherwise it returns the provided defaultValue.
func (o *Optional[T]) Get() T {
	return o.Value
}

// SetOverride sets the value and marks it as overridden at runtime.
func (o *Optional[T]) SetOverride(value T) {
	o.RuntimeOverride = true
	o.Value = value
}

// DefaultTrueBool is a boolean type that defaults to true if not present and not overridden.
type DefaultTrueBool struct {
	Optional[bool]
}

// Get returns the boolean value, defaulting to true if not present and not overridden.
func (b *DefaultTrueBool) Get() bool {
	if !b.Present && !b.RuntimeOverride {
		return true
	}
	return b.Value
}

// DefaultTrueBoolHookFunc returns a mapstructure decode hook function for DefaultTrueBool.
func DefaultTrueBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		// Only target our specific named type
		if t != reflect.TypeOf(DefaultTrueBool{}) {
			return data, nil
		}

		var val bool
		switch v := data.(type) {
		case bool:
			val = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return data, nil
			}
			val = parsed
		default:
			return data, nil
		}

		// Return the specific type with the inner Optional initialized
		return DefaultTrueBool{
			Optional: Optional[bool]{
				Value:   val,
				Present: true,
			},
		}, nil
	}
}

// Angle is an angle in radians.
//
// Plain numbers in the configuration file are interpreted as degrees,
// strings may carry an explicit "deg" or "rad" suffix.
type Angle float64

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

func AngleFromDegrees(degrees float64) Angle {
	return Angle(degrees * math.Pi / 180)
}

// ParseAngle parses strings like "90", "90deg" or "1.57rad".
// Values without a unit are interpreted as degrees.
func ParseAngle(s string) (Angle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	unit := "deg"
	if strings.HasSuffix(s, "rad") {
		unit = "rad"
		s = strings.TrimSuffix(s, "rad")
	} else if strings.HasSuffix(s, "deg") {
		s = strings.TrimSuffix(s, "deg")
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q: %w", s, err)
	}
	if unit == "rad" {
		return Angle(value), nil
	}
	return AngleFromDegrees(value), nil
}

// AngleHookFunc returns a mapstructure decode hook function for Angle.
func AngleHookFunc() mapstructure.DecodeHookFuncType {
	angleType := reflect.TypeOf(Angle(0))
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		if t != angleType {
			return data, nil
		}

		switch v := data.(type) {
		case Angle:
			return v, nil
		case float64:
			return AngleFromDegrees(v), nil
		case float32:
			return AngleFromDegrees(float64(v)), nil
		case int:
			return AngleFromDegrees(float64(v)), nil
		case int64:
			return AngleFromDegrees(float64(v)), nil
		case string:
			return ParseAngle(v)
		default:
			return data, nil
		}
	}
}
