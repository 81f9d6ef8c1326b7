// Natural sort ordering for archive paths, so "Issue 2.cbz" sorts before
// "Issue 10.cbz" in reports and processing order.

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var sortTokenizer = regexp.MustCompile(`(\d+|\D+)`)

type sortToken struct {
	str   string
	num   int
	isNum bool
}

func tokenizePath(s string) []sortToken {
	parts := sortTokenizer.FindAllString(s, -1)
	tokens := make([]sortToken, len(parts))
	for i, p := range parts {
		if num, err := strconv.Atoi(p); err == nil {
			tokens[i] = sortToken{num: num, isNum: true}
		} else {
			tokens[i] = sortToken{str: strings.ToLower(p)}
		}
	}
	return tokens
}

// NaturalSortLess compares two strings in natural sort order: runs of
// digits compare numerically, everything else compares case-insensitively.
func NaturalSortLess(s1, s2 string) bool {
	t1 := tokenizePath(s1)
	t2 := tokenizePath(s2)
	n := min(len(t1), len(t2))

	for i := 0; i < n; i++ {
		// A number sorts before any non-number token.
		if t1[i].isNum != t2[i].isNum {
			return t1[i].isNum
		}
		if t1[i].isNum {
			if t1[i].num != t2[i].num {
				return t1[i].num < t2[i].num
			}
		} else if t1[i].str != t2[i].str {
			return t1[i].str < t2[i].str
		}
	}
	return len(t1) < len(t2)
}
