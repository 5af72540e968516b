// Package rows converts between the string-first row records edited by
// the UI and the typed manifest entities. Collect applies the uniform
// lenience rules: rows with an empty key field are dropped, strings are
// trimmed, optional empties are omitted, and numeric or date parse
// failures silently omit the field instead of blocking the save.
package rows

import (
	"strconv"
	"strings"

	"tableflip.dev/labjo/pkg/manifest"
)

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// SoftFloat parses a numeric field, returning nil on any failure.
func SoftFloat(s string) *float64 {
	s = trimmed(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// SoftInt parses an integer field, returning nil on any failure.
func SoftInt(s string) *int {
	s = trimmed(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// SoftDate normalizes a date field, returning nil on any failure.
func SoftDate(s string) *manifest.Date {
	d, ok := manifest.ParseDate(s)
	if !ok {
		return nil
	}
	return &d
}

func FormatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func FormatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func FormatDate(d *manifest.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// SplitList turns a multi-line or comma separated input field into a
// trimmed list, dropping empties.
func SplitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if v := trimmed(f); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
