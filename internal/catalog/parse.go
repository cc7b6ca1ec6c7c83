package catalog

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseID coerces a path or query value to a product id the way links in
// the site have always been read: leading whitespace and an optional sign
// are accepted, then the longest run of decimal digits. "7abc" is 7, "abc"
// is not an id at all.
func ParseID(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
