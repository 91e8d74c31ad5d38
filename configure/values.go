package configure

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// Values is a flat option name to value mapping. Typed getters return the
// zero value when the option is absent or does not parse.
type Values map[string]string

func (v Values) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

func (v Values) Set(key, value string) {
	v[key] = value
}

func (v Values) Del(key string) {
	delete(v, key)
}

func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the values.
func (v Values) Map() map[string]string {
	result := make(map[string]string, len(v))
	for k, val := range v {
		result[k] = val
	}
	return result
}

func (v Values) String(key string) string {
	return v[key]
}

func (v Values) Bool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v[key]))
	return err == nil && b
}

func (v Values) Int(key string) int {
	if n, err := strconv.ParseInt(strings.TrimSpace(v[key]), 10, 0); err == nil {
		return int(n)
	} else {
		return 0
	}
}

func (v Values) Int64(key string) int64 {
	if n, err := strconv.ParseInt(strings.TrimSpace(v[key]), 10, 64); err == nil {
		return n
	} else {
		return 0
	}
}

func (v Values) Uint(key string) uint {
	if n, err := strconv.ParseUint(strings.TrimSpace(v[key]), 10, 0); err == nil {
		return uint(n)
	} else {
		return 0
	}
}

func (v Values) Float64(key string) float64 {
	if n, err := strconv.ParseFloat(strings.TrimSpace(v[key]), 64); err == nil {
		return n
	} else {
		return 0
	}
}

func (v Values) Duration(key string) time.Duration {
	if d, err := str2duration.ParseDuration(strings.TrimSpace(v[key])); err == nil {
		return d
	} else {
		return 0
	}
}

func (v Values) StringList(key string) []string {
	var result []string
	for _, sv := range strings.Split(v[key], ",") {
		sv = strings.TrimSpace(sv)
		if len(sv) == 0 {
			continue
		}
		result = append(result, sv)
	}
	return result
}

func (v Values) SetStringList(key string, values []string) {
	v[key] = strings.Join(values, ",")
}

// RunOptions is the result of one resolution.
type RunOptions struct {
	Values

	// UserConfigPath is the settings file given with --config, if any.
	UserConfigPath string
	// IsAllHelp is never written to the settings snapshot.
	IsAllHelp bool
}

func newRunOptions(values map[string]string) *RunOptions {
	return &RunOptions{Values: Values(values)}
}
