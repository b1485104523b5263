package common

// GetStringArg extracts a string argument from request arguments.
// Returns the empty string if the argument is missing or not a string.
func GetStringArg(args map[string]interface{}, key string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return ""
}

// GetIntArg extracts an integer argument from request arguments.
// JSON numbers arrive as float64, so both float64 and int are accepted.
// Returns the fallback if the argument is missing or not a number.
func GetIntArg(args map[string]interface{}, key string, fallback int) int {
	switch val := args[key].(type) {
	case float64:
		return int(val)
	case int:
		return val
	default:
		return fallback
	}
}

// HasArg reports whether an argument was provided at all, regardless of type.
func HasArg(args map[string]interface{}, key string) bool {
	_, ok := args[key]
	return ok
}
