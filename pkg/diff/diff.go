// Package diff renders line-oriented unified diffs of two texts, such as the
// entry sheets of two elements.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
	Same    int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified returns a unified diff of a and b, one hunk covering the whole
// text. Identical inputs give the empty string.
func Unified(a, b []byte, aLabel, bLabel string) string {
	out, _ := UnifiedStats(a, b, aLabel, bLabel)
	return out
}

// UnifiedStats is Unified plus line counts.
func UnifiedStats(a, b []byte, aLabel, bLabel string) (string, Stats) {
	var stats Stats
	if bytes.Equal(a, b) {
		stats.Same = len(splitLines(string(a)))
		return "", stats
	}

	dmp := diffmatchpatch.New()
	aChars, bChars, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffMain(aChars, bChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var body bytes.Buffer
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			body.WriteString(prefix)
			body.WriteString(line)
			body.WriteByte('\n')
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			default:
				stats.Same++
			}
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", aLabel)
	fmt.Fprintf(&buf, "+++ %s\n", bLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", stats.Same+stats.Removed, stats.Same+stats.Added)
	buf.Write(body.Bytes())

	result := buf.String()
	resultLines := strings.Split(result, "\n")
	if len(resultLines) > maxDiffLines {
		truncated := strings.Join(resultLines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
