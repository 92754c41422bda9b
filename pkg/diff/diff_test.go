package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	text := []byte("Iron Properties\n  Series: Transition metals\n")
	out, stats := UnifiedStats(text, text, "Fe", "Fe")
	require.Empty(t, out)
	require.False(t, stats.Changed())
	require.Equal(t, 2, stats.Same)
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	a := []byte("General\n  Group: 8\n  Period: 4\n")
	b := []byte("General\n  Group: 11\n  Period: 4\n")

	out, stats := UnifiedStats(a, b, "Fe", "Cu")
	require.True(t, strings.HasPrefix(out, "--- Fe\n+++ Cu\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, out, " General\n")
	require.Contains(t, out, "-  Group: 8\n")
	require.Contains(t, out, "+  Group: 11\n")
	require.Contains(t, out, "   Period: 4\n")
	require.Equal(t, Stats{Added: 1, Removed: 1, Same: 2}, stats)
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	// A character diff would keep the shared "Iro" prefix; lines must not.
	out := Unified([]byte("Iron\n"), []byte("Iridium\n"), "a", "b")
	require.Contains(t, out, "-Iron\n")
	require.Contains(t, out, "+Iridium\n")
}

func TestUnifiedMissingTrailingNewline(t *testing.T) {
	t.Parallel()

	out, stats := UnifiedStats([]byte("a\nb"), []byte("a\nc\n"), "x", "y")
	require.Contains(t, out, "+c\n")
	require.Equal(t, 1, stats.Added)
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var a, b strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&a, "a%d\n", i)
		fmt.Fprintf(&b, "b%d\n", i)
	}

	out := Unified([]byte(a.String()), []byte(b.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	require.LessOrEqual(t, len(strings.Split(out, "\n")), maxDiffLines+2)
}
