package flashpoint

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONArray means the reply contained no [ ... ] slice at all.
var ErrNoJSONArray = errors.New("no JSON array in reply")

// ExtractJSONArray slices raw from the first '[' to the last ']' inclusive
// and unmarshals the slice into v. Models routinely wrap their JSON in prose
// or markdown fences; the bracket scan tolerates that. The parsed shape is
// not validated beyond what v itself demands.
func ExtractJSONArray(raw string, v any) error {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return ErrNoJSONArray
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}
