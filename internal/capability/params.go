package capability

import "fmt"

func stringParam(params map[string]interface{}, key string, required bool) (string, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("%s parameter is required", key)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s parameter must be a string, got %T", key, raw)
	}
	if required && s == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return s, nil
}

// numberParam accepts the float64 produced by encoding/json as well as
// Go numeric literals used by callers and tests.
func numberParam(params map[string]interface{}, key string) (float64, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%s parameter must be a number, got %T", key, raw)
	}
}
