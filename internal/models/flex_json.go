package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags which branch of a StatValue is populated.
type ValueKind uint8

const (
	// KindPlaceholder covers "-", empty strings, null and absent fields.
	// It is the lowest possible sort value.
	KindPlaceholder ValueKind = iota
	KindNumber
	KindText
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "placeholder"
	}
}

// StatValue is a single cell of the stats file. The generator writes stats as
// native JSON numbers, as quoted strings ("10", "-") or leaves them out
// entirely; StatValue keeps the recorded text for display and an explicit
// kind for ordering.
type StatValue struct {
	Kind ValueKind
	Num  float64
	Text string
}

// Placeholder returns the sort-minimum value with the given display text.
func Placeholder(text string) StatValue {
	return StatValue{Kind: KindPlaceholder, Text: text}
}

// Number returns a numeric value displayed without trailing zeros.
func Number(n float64) StatValue {
	return StatValue{Kind: KindNumber, Num: n, Text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// ParseStatValue classifies a raw string. Numeric-looking strings become
// numbers, "-" and blanks become placeholders, everything else is text.
func ParseStatValue(s string) StatValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return Placeholder(s)
	}
	if looksNumeric(trimmed) {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return StatValue{Kind: KindNumber, Num: n, Text: s}
		}
	}
	return StatValue{Kind: KindText, Text: s}
}

// Numeric narrows the value to a number. Text that does not parse is
// demoted to a placeholder; used for shirt numbers.
func (v StatValue) Numeric() StatValue {
	if v.Kind == KindText {
		return Placeholder(v.Text)
	}
	return v
}

// IsPlaceholder reports whether v sorts as the minimum.
func (v StatValue) IsPlaceholder() bool {
	return v.Kind == KindPlaceholder
}

// String returns the recorded display text.
func (v StatValue) String() string {
	return v.Text
}

// UnmarshalJSON accepts native numbers, quoted numbers, "-" and null.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Placeholder("")
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex unmarshal: %w", err)
		}
		*v = ParseStatValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex unmarshal: unsupported stat value %s", string(data))
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}
	*v = StatValue{Kind: KindNumber, Num: f, Text: n.String()}
	return nil
}

// MarshalJSON writes numbers natively and everything else as its text.
// An empty placeholder is written as null.
func (v StatValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Kind == KindNumber:
		return json.Marshal(v.Num)
	case v.Kind == KindPlaceholder && v.Text == "":
		return []byte("null"), nil
	default:
		return json.Marshal(v.Text)
	}
}

// looksNumeric rejects the forms strconv accepts but a spreadsheet export
// never means as a number: hex, "inf", "nan", underscores.
func looksNumeric(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '.', c == '-', c == '+', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}
