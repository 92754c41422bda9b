package entries

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Flatten strips markup tags from s and resolves character entities, so
// "g/cm<sup>3</sup>" becomes "g/cm3".
func Flatten(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return s
			}
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
