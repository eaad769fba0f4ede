package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCell_EscapesFormulaPrefixes(t *testing.T) {
	cases := []string{
		`=HYPERLINK("http://evil.com")`,
		"+1234567890",
		"-2+3",
		"@SUM(A1:A10)",
		"\tpadded",
		"\rpadded",
		"  =cmd|' /C calc'!A0",
		" \t @import",
	}
	for _, in := range cases {
		assert.Equal(t, "'"+in, SanitizeCell(in), "input %q", in)
	}
}

func TestSanitizeCell_LeavesSafeStringsAlone(t *testing.T) {
	cases := []string{
		"John Doe",
		"john.doe@college.edu",
		"a=b",
		"  leading spaces",
		"",
		"   ",
	}
	for _, in := range cases {
		assert.Equal(t, in, SanitizeCell(in), "input %q", in)
	}
}

func TestSanitizeCell_PassesNonStringsThrough(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 42, SanitizeCell(42))
	assert.Equal(t, 3.14, SanitizeCell(3.14))
	assert.Equal(t, true, SanitizeCell(true))
	assert.Equal(t, now, SanitizeCell(now))
	assert.Nil(t, SanitizeCell(nil))
}
