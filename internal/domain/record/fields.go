package record

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// emptySentinels are the case-insensitive placeholder strings legacy
// intake forms stored instead of leaving a column NULL. "nehum" is a
// historic misspelling of "nenhum" that exists in production data and
// must keep matching.
var emptySentinels = map[string]struct{}{
	"n/a":           {},
	"null":          {},
	"nehum":         {},
	"nenhum":        {},
	"não informado": {},
	"nao informado": {},
	"não":           {},
	"nao":           {},
}

// IsFieldEmpty reports whether an intake answer should be treated as
// absent. Strings match the legacy placeholder vocabulary after trimming
// and lowercasing; slices and maps are empty when they have no elements;
// booleans and numbers always count as present.
func IsFieldEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		if s == "" {
			return true
		}
		_, hit := emptySentinels[s]
		return hit
	case *string:
		if val == nil {
			return true
		}
		return IsFieldEmpty(*val)
	case bool:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr:
		if rv.IsNil() {
			return true
		}
		return IsFieldEmpty(rv.Elem().Interface())
	}
	return false
}

// ShouldShowField is the display-side complement of IsFieldEmpty.
func ShouldShowField(v any) bool {
	return !IsFieldEmpty(v)
}

// FormatFieldValue returns the trimmed display form of an answer, or ""
// when the answer is empty under IsFieldEmpty.
func FormatFieldValue(v any) string {
	if IsFieldEmpty(v) {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case *string:
		return strings.TrimSpace(*val)
	}
	return fmt.Sprint(v)
}

// NormalizeSelections turns a legacy selection column into a clean slice
// of labels. Columns hold one of three historic shapes: a JSON array, a
// delimited string (any mix of "," ";" "|"), or a single scalar label.
// Returns nil when the column is NULL or blank.
func NormalizeSelections(raw *string) []string {
	out, _ := normalizeSelections(raw)
	return out
}

// normalizeSelections additionally reports whether the value looked like
// JSON but failed to parse as an array, so callers can flag the row.
func normalizeSelections(raw *string) ([]string, bool) {
	if raw == nil {
		return nil, false
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, false
	}

	malformed := false
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var arr []any
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return coerceLabels(arr), false
		}
		malformed = true
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, malformed
	}
	return out, malformed
}

func coerceLabels(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		switch v := el.(type) {
		case nil:
			continue
		case string:
			if t := strings.TrimSpace(v); t != "" {
				out = append(out, t)
			}
		case bool:
			if v {
				out = append(out, "true")
			}
		case float64:
			if v != 0 {
				out = append(out, strings.TrimSpace(fmt.Sprint(v)))
			}
		default:
			if t := strings.TrimSpace(fmt.Sprint(v)); t != "" {
				out = append(out, t)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
