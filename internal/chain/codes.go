package chain

import (
	"encoding/json"
	"math"
)

// ProgramErrorCode extracts the custom program error code from the data
// attached to a failed preflight, shaped like
// {"err": {"InstructionError": [idx, {"Custom": code}]}}. A bare err
// object is accepted too. It returns nil when no code is present.
func ProgramErrorCode(data any) *int64 {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := m["err"]; ok {
		if code := ProgramErrorCode(inner); code != nil {
			return code
		}
	}
	ie, ok := m["InstructionError"].([]any)
	if !ok || len(ie) != 2 {
		return nil
	}
	detail, ok := ie[1].(map[string]any)
	if !ok {
		return nil
	}
	return toInt64(detail["Custom"])
}

func toInt64(v any) *int64 {
	var n int64
	switch x := v.(type) {
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return nil
		}
		n = i
	case float64:
		if x != math.Trunc(x) {
			return nil
		}
		n = int64(x)
	case int:
		n = int64(x)
	case int64:
		n = x
	case uint64:
		if x > math.MaxInt64 {
			return nil
		}
		n = int64(x)
	default:
		return nil
	}
	return &n
}
