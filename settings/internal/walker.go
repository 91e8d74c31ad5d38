package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-ini/ini"

	"github.com/zhangel/go-configure/internal"
)

// Split turns a decoded document into sections. Top-level maps are sections,
// top-level scalars land in the default section.
func Split(content map[string]interface{}) Sections {
	config := Sections{}
	for k, v := range content {
		if m, ok := asMap(v); ok {
			sec := config.section(k)
			Walk("", m, sec)
			continue
		}

		if s, ok := scalar(v); ok {
			config.section(ini.DefaultSection)[k] = s
		}
	}
	return config
}

func Walk(prefix string, content map[string]interface{}, config map[string]string) {
	withPrefix := func(k string) string {
		if prefix == "" {
			return k
		} else {
			return prefix + "." + k
		}
	}

	for k, v := range content {
		if m, ok := asMap(v); ok {
			Walk(withPrefix(k), m, config)
		} else if s, ok := scalar(v); ok {
			config[withPrefix(k)] = s
		}
	}
}

// Nest is the inverse of Split for writers of structured formats.
func Nest(sections Sections) map[string]interface{} {
	content := make(map[string]interface{}, len(sections))
	for name, values := range sections {
		if name == ini.DefaultSection {
			for k, v := range values {
				content[k] = v
			}
			continue
		}

		sec := make(map[string]interface{}, len(values))
		for k, v := range values {
			sec[k] = v
		}
		content[name] = sec
	}
	return content
}

func scalar(v interface{}) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, time.Duration:
		return internal.Stringify(v), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case []interface{}:
		return withSlice(v)
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch v := v.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, val := range v {
			m[fmt.Sprintf("%v", k)] = val
		}
		return m, true
	default:
		return nil, false
	}
}

func withSlice(slice []interface{}) (string, bool) {
	var result []string

	for _, val := range slice {
		if s, ok := scalar(val); ok {
			result = append(result, s)
		}
	}

	if len(result) > 0 {
		return strings.Join(result, ","), true
	} else {
		return "", false
	}
}
