package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stringify renders a default or settings value the way it is stored in a
// settings file. Lists are joined with commas.
func Stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Duration:
		return v.String()
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, Stringify(item))
		}
		return strings.Join(items, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// StringifyMap converts programmatic defaults into settings values. Nil values
// are dropped so they do not count as a concrete default.
func StringifyMap(m map[string]interface{}) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		result[k] = Stringify(v)
	}
	return result
}
