package config

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeRole decodes the role block for role into a [RoleBlock].
//
// It assumes the document already passed validation. Numeric hostnames are
// converted to text. A count must be a whole number that fits an int.
func (c RawConfig) DecodeRole(role Role) (RoleBlock, error) {
	var rb RoleBlock

	block, ok := c.Block(role)
	if !ok {
		return rb, fmt.Errorf("role block %q is missing", role)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rb,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(wholeNumberHook),
	})
	if err != nil {
		return rb, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(block); err != nil {
		return rb, fmt.Errorf("failed to decode %s block: %w", role, err)
	}

	return rb, nil
}

// wholeNumberHook refuses to truncate floats into int fields.
func wholeNumberHook(from, to reflect.Type, data any) (any, error) {
	if from == nil || to.Kind() != reflect.Int {
		return data, nil
	}
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, fmt.Errorf("%v is out of range", data)
	}
	return int(f), nil
}
