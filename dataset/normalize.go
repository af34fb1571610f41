package dataset

import (
	"strings"
	"unicode"
)

// NormalizeColumnName rewrites a raw header name to the canonical form:
// lower-case, with every run of non-letter/non-digit characters collapsed
// into a single underscore and leading/trailing separators trimmed.
func NormalizeColumnName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// NormalizeColumns rewrites every column name in place and re-keys each
// row accordingly. Must run before any field is referenced; downstream
// lookups assume canonical names.
func (d *Dataset) NormalizeColumns() {
	renamed := make(map[string]string, len(d.Columns))
	for i, c := range d.Columns {
		n := NormalizeColumnName(c)
		renamed[c] = n
		d.Columns[i] = n
	}
	for _, row := range d.Rows {
		for old, now := range renamed {
			if old == now {
				continue
			}
			if v, ok := row[old]; ok {
				row[now] = v
				delete(row, old)
			}
		}
	}
}
