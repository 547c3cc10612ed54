package table

import (
	"sort"
	"strconv"
	"strings"
)

// Row is one labeled record of a table. Cells are held as loosely typed
// values (float64, bool, or string) with presence-aware typed accessors:
// a missing cell and a zero cell are different things to the builder.
type Row struct {
	Label  string
	fields map[string]any
}

// NewRow creates a row from a label and its cells. The field map is copied.
func NewRow(label string, fields map[string]any) Row {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		copied[k] = v
	}
	return Row{Label: label, fields: copied}
}

// Has reports whether the field is present with a non-nil value.
func (r Row) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Value returns the raw cell value.
func (r Row) Value(field string) (any, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Number returns the field coerced to float64, or def when the field is
// missing or not interpretable as a number.
func (r Row) Number(field string, def float64) float64 {
	if v, ok := r.NumberOK(field); ok {
		return v
	}
	return def
}

// NumberOK returns the field coerced to float64 and whether the coercion
// succeeded.
func (r Row) NumberOK(field string) (float64, bool) {
	v, ok := r.fields[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Bool returns the field coerced to bool, or def when missing. Strings accept
// the usual spreadsheet spellings of truth; numbers are true when non-zero.
func (r Row) Bool(field string, def bool) bool {
	v, ok := r.fields[field]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1", "on", "enabled":
			return true
		case "false", "no", "0", "off", "disabled", "":
			return false
		default:
			return def
		}
	case float64:
		return b != 0
	case int:
		return b != 0
	default:
		return def
	}
}

// String returns the field as a trimmed string, or "" when missing. Numeric
// cells are stringified, since a loader may type a single bus label or factor
// as a number; bool cells are not.
func (r Row) String(field string) string {
	v, ok := r.fields[field]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		return ""
	}
}

// Fields returns the present field names in sorted order.
func (r Row) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
