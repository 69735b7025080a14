package eval

// Truth reports whether v counts as true in if and unless blocks. nil,
// false, zero numbers, empty strings and empty collections are false.
func Truth(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case map[string]any:
		return len(x) != 0
	case map[any]any:
		return len(x) != 0
	case []any:
		return len(x) != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0.0
	default:
		return true
	}
}
