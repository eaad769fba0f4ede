package validation

import "strings"

// SanitizeCell guards spreadsheet and CSV consumers against formula
// injection. Strings that would be interpreted as a formula get a literal
// single quote prepended, forcing text interpretation; everything else,
// including non-string values, passes through unchanged.
//
// Not idempotent: callers apply it exactly once, at the serialization
// boundary to the spreadsheet mirror. The canonical record keeps the
// original text.
func SanitizeCell(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if startsFormula(s) {
		return "'" + s
	}
	return s
}

// startsFormula reports whether s begins with a formula trigger, either
// directly or after leading whitespace. Leading tabs and carriage returns
// are triggers in their own right.
func startsFormula(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return true
	}
	trimmed := strings.TrimLeft(s, " \t\n\r\v\f")
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '=', '+', '-', '@':
		return true
	}
	return false
}
