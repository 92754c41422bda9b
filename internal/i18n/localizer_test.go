package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestComposeSubstitutesPositionalArguments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "single", format: "%1 K", args: []any{"273.15"}, want: "273.15 K"},
		{name: "reordered", format: "%2 before %1", args: []any{"a", "b"}, want: "b before a"},
		{name: "repeated", format: "%1/%1", args: []any{7}, want: "7/7"},
		{name: "escaped percent", format: "100%% of %1", args: []any{"x"}, want: "100% of x"},
		{name: "missing argument", format: "%1 and %2", args: []any{"x"}, want: "x and %2"},
		{name: "no references", format: "plain", args: nil, want: "plain"},
		{name: "trailing percent", format: "50%", args: nil, want: "50%"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Compose(tc.format, tc.args...))
		})
	}
}

func TestEnglishReturnsIdentifiersUnchanged(t *testing.T) {
	t.Parallel()

	loc := Default()
	require.Equal(t, "Iron", loc.T("Iron"))
	require.Equal(t, "(%1)", loc.T("(%1)"))
	require.Equal(t, "100%", loc.T("100%"))
	require.Equal(t, ", ", loc.ListSeparator())
}

func TestGermanTranslatesBundledMessages(t *testing.T) {
	t.Parallel()

	loc := New(language.German)
	require.Equal(t, "Eisen", loc.T("Iron"))
	require.Equal(t, "Eigenschaften von Eisen", loc.Tf("%1 Properties", loc.T("Iron")))
	require.Equal(t, "Helium", loc.T("Helium"))
	require.Equal(t, "(unbekannt)", loc.T("(unknown)"))
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	loc, err := Parse("de-DE")
	require.NoError(t, err)
	require.Equal(t, "Eisen", loc.T("Iron"))

	loc, err = Parse("")
	require.NoError(t, err)
	require.Equal(t, language.English, loc.Language())

	_, err = Parse("not a language!")
	require.Error(t, err)
}

func TestCollateUsesLanguageOrder(t *testing.T) {
	t.Parallel()

	loc := Default()
	require.Negative(t, loc.Collate("apple", "Banana"))
	require.Positive(t, loc.Collate("zinc", "Argon"))
	require.Zero(t, loc.Collate("same", "same"))
}

func TestNilLocalizerFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	var loc *Localizer
	require.Equal(t, "Gas", loc.T("Gas"))
	require.Equal(t, language.English, loc.Language())
	require.Equal(t, "1766", loc.Year(1766))
}
