package validation

import (
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var (
	trueValues  = map[string]struct{}{"true": {}, "1": {}, "yes": {}}
	falseValues = map[string]struct{}{"false": {}, "0": {}, "no": {}}
)

func castString(path string, value interface{}) (string, error) {
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return "", NewCastError("string", path, value)
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", NewCastError("string", path, value)
	}
	return s, nil
}

// castNumber returns nil for an empty string, which counts as a missing value.
// NaN and infinities are cast failures.
func castNumber(path string, value interface{}) (*float64, error) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
		value = s
	}
	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return nil, NewCastError("Number", path, value)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, NewCastError("Number", path, value)
	}
	return &f, nil
}

func castBool(path string, value interface{}) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	s, err := castString(path, value)
	if err != nil {
		return false, NewCastError("Boolean", path, value)
	}
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := trueValues[key]; ok {
		return true, nil
	}
	if _, ok := falseValues[key]; ok {
		return false, nil
	}
	return false, NewCastError("Boolean", path, value)
}

func castStringList(path string, value interface{}) ([]string, error) {
	switch typed := value.(type) {
	case []string:
		return append([]string{}, typed...), nil
	case []interface{}:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if item == nil {
				continue
			}
			s, err := castString(path, item)
			if err != nil {
				return nil, NewCastError("[String]", path, value)
			}
			out = append(out, s)
		}
		return out, nil
	case map[string]interface{}:
		return nil, NewCastError("[String]", path, value)
	default:
		s, err := castString(path, value)
		if err != nil {
			return nil, NewCastError("[String]", path, value)
		}
		return []string{s}, nil
	}
}

func castObject(path string, value interface{}) (map[string]interface{}, error) {
	typed, ok := value.(map[string]interface{})
	if !ok {
		return nil, NewCastError("Object", path, value)
	}
	return typed, nil
}

func renderValue(value interface{}) string {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(value)
	if err != nil {
		return cast.ToString(value)
	}
	return string(data)
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "Object"
	case []interface{}, []string:
		return "Array"
	}
	if _, err := cast.ToFloat64E(value); err == nil {
		return "number"
	}
	return "unknown"
}
