package config

// Predicate reports whether a role block value is acceptable.
type Predicate func(v any) bool

// Positive accepts numeric values strictly greater than zero.
// Strings, booleans and nil are rejected.
func Positive(v any) bool {
	switch n := v.(type) {
	case int:
		return n > 0
	case int8:
		return n > 0
	case int16:
		return n > 0
	case int32:
		return n > 0
	case int64:
		return n > 0
	case uint:
		return n > 0
	case uint8:
		return n > 0
	case uint16:
		return n > 0
	case uint32:
		return n > 0
	case uint64:
		return n > 0
	case float32:
		return n > 0
	case float64:
		return n > 0
	default:
		return false
	}
}

// Present accepts any value other than nil, false and the empty string.
func Present(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case bool:
		return s
	case string:
		return s != ""
	default:
		return true
	}
}

// blockCheck validates one role block. An absent count always passes;
// a present count is checked with countOK.
func blockCheck(block map[string]any, countOK Predicate) bool {
	if countOK == nil {
		countOK = Positive
	}

	validCount := true
	if count, ok := block[KeyCount]; ok && count != nil {
		validCount = countOK(count)
	}

	return Present(block[KeyHostname]) &&
		Positive(block[KeyCPUs]) &&
		Positive(block[KeyMemory]) &&
		validCount
}
