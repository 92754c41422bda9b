package value

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/elemental/internal/i18n"
)

type recordedEntry struct {
	name, value, tip string
}

type recordingView struct {
	entries []recordedEntry
}

func (v *recordingView) Header(string) {}

func (v *recordingView) Entry(name, value, tip string) {
	v.entries = append(v.entries, recordedEntry{name: name, value: value, tip: tip})
}

func TestQualifierHasValue(t *testing.T) {
	t.Parallel()

	require.True(t, Neutral.HasValue())
	require.False(t, Qualifier(0).HasValue())
	require.False(t, Unknown.HasValue())
	require.False(t, NotApplicable.HasValue())
	require.True(t, Estimated.HasValue())
	require.True(t, Approximate.HasValue())
	require.True(t, IsotopeSpecific.HasValue())
}

func TestParseQualifierRoundTrip(t *testing.T) {
	t.Parallel()

	for q := Unknown; q <= IsotopeSpecific; q++ {
		parsed, err := ParseQualifier(q.String())
		require.NoError(t, err)
		require.Equal(t, q, parsed)
	}

	_, err := ParseQualifier("maybe")
	require.Error(t, err)

	var q Qualifier
	require.NoError(t, q.UnmarshalText([]byte("iso")))
	require.Equal(t, IsotopeSpecific, q)
}

func TestDefinednessOrdering(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	defined := []QualifiedValue{
		NewValue(1.5, Neutral),
		NewValue[int64](3, Estimated),
		NewValue("text", Approximate),
		NewList([]float64{1, 2}, IsotopeSpecific),
		NewMessage(loc, "Silvery", Neutral),
		NewEnum(Halogen, Neutral),
		NewEnum(BlockD, Neutral),
		NewEnum(Gas, Neutral),
		NewEnum(Hexagonal, Neutral),
		NewColorValue(Butter, Neutral),
	}
	undefined := []QualifiedValue{
		Undefined[float64](Unknown),
		Undefined[int64](NotApplicable),
		Undefined[string](Unknown),
		UndefinedList[float64](NotApplicable),
		UndefinedMessage(Unknown),
		UndefinedEnum[SeriesKind](Unknown),
		UndefinedEnum[BlockKind](NotApplicable),
		UndefinedEnum[PhaseKind](Unknown),
		UndefinedEnum[LatticeKind](Unknown),
		UndefinedColorValue(NotApplicable),
	}

	for i := range defined {
		require.Positive(t, undefined[i].Compare(defined[i]), "undefined %T must sort after defined", undefined[i])
		require.Negative(t, defined[i].Compare(undefined[i]), "defined %T must sort before undefined", defined[i])
		require.Zero(t, undefined[i].Compare(undefined[i]))
	}
}

func TestQualifierDecorations(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	cases := []struct {
		name string
		q    Qualifier
		want string
		tip  string
	}{
		{name: "neutral", q: Neutral, want: "1.5 K"},
		{name: "estimated", q: Estimated, want: "(1.5 K)", tip: "Estimated or calculated value"},
		{name: "approximate", q: Approximate, want: "~1.5 K", tip: "Approximate"},
		{name: "isotope", q: IsotopeSpecific, want: "[1.5 K]", tip: "Value for most stable isotope"},
		{name: "unknown", q: Unknown, want: "(unknown)"},
		{name: "not applicable", q: NotApplicable, want: "(n/a)"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := NewValue(1.5, tc.q)
			require.Equal(t, tc.want, v.Render(loc, "%1 K"))
			require.Equal(t, tc.tip, v.Tip(loc))
		})
	}
}

func TestGenericValueCompare(t *testing.T) {
	t.Parallel()

	require.Negative(t, NewValue(1.0, Neutral).Compare(NewValue(2.0, Estimated)))
	require.Positive(t, NewValue("b", Neutral).Compare(NewValue("a", Neutral)))
	require.Zero(t, NewValue[int64](4, Neutral).Compare(NewValue[int64](4, Approximate)))
	// Values of different shapes do not order against each other.
	require.Zero(t, NewValue(1.0, Neutral).Compare(NewValue("1", Neutral)))
}

func TestConvertKeepsQualifier(t *testing.T) {
	t.Parallel()

	f := Convert[float64](NewValue[int64](7, Estimated))
	require.Equal(t, 7.0, f.Get())
	require.Equal(t, Estimated, f.Qualifier())

	l := ConvertList[float64](NewList([]int64{1, 2, 3}, Neutral))
	require.Equal(t, []float64{1, 2, 3}, l.Values)
	require.Equal(t, 3, l.Len())
}

func TestListRenderAndCompare(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	l := NewList([]int64{-1, 1, 3}, Neutral)
	require.Equal(t, "-1, 1, 3", l.Render(loc, ""))
	require.Equal(t, "~100 pm, ~120.5 pm", NewList([]float64{100, 120.5}, Approximate).Render(loc, "%1 pm"))
	require.Equal(t, "(unknown)", UndefinedList[int64](Unknown).Render(loc, ""))

	require.Negative(t, NewList([]int64{1, 2}, Neutral).Compare(NewList([]int64{1, 3}, Neutral)))
	require.Negative(t, NewList([]int64{1, 2}, Neutral).Compare(NewList([]int64{1, 2, 0}, Neutral)))
	require.Zero(t, NewList([]int64{4}, Neutral).Compare(NewList([]int64{4}, Neutral)))
}

func TestEmitSkipsUndefinedUnlessAlways(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	view := &recordingView{}

	Emit(view, Undefined[float64](Unknown), loc, "Density:", "")
	Emit(view, NewValue(2.5, Estimated), loc, "Density:", "%1 g/L")
	Emit(view, UndefinedEvent(Unknown), loc, "Discovery:", "")

	require.Equal(t, []recordedEntry{
		{name: "Density:", value: "(2.5 g/L)", tip: "Estimated or calculated value"},
		{name: "Discovery:", value: "Undiscovered"},
	}, view.entries)
}

func TestMessageRendering(t *testing.T) {
	t.Parallel()

	en := i18n.Default()
	de := i18n.New(language.German)

	require.Equal(t, "Iron", NewMessage(en, "Iron", Neutral).Render(en, ""))
	require.Equal(t, "Eisen", NewMessage(en, "Iron", Neutral).Render(de, ""))
	require.Equal(t, "(?) Iron", NewMessage(en, "Iron", Estimated).Render(en, ""))
	require.Equal(t, "(?) Iron", NewMessage(en, "Iron", Approximate).Render(en, ""))
	require.Equal(t, "[Iron]", NewMessage(en, "Iron", IsotopeSpecific).Render(en, ""))
	require.Equal(t, "(n/a)", UndefinedMessage(NotApplicable).Render(en, ""))
	require.Equal(t, "Iron", NewMessage(en, "Iron", Neutral).Source())
}

func TestMessageCollation(t *testing.T) {
	t.Parallel()

	en := i18n.Default()
	require.Negative(t, NewMessage(en, "argon", Neutral).Compare(NewMessage(en, "Boron", Neutral)))
	require.Positive(t, NewMessage(en, "Zinc", Neutral).Compare(NewMessage(en, "argon", Neutral)))

	// In German, Iron translates to Eisen and sorts before Gold.
	de := i18n.New(language.German)
	require.Negative(t, NewMessage(de, "Iron", Neutral).Compare(NewMessage(de, "Gold", Neutral)))
	require.Positive(t, NewMessage(en, "Iron", Neutral).Compare(NewMessage(en, "Gold", Neutral)))
}

func TestEventRendering(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	require.Equal(t, "1766 (England)", NewEvent(1766, "England", Neutral).Render(loc, ""))
	require.Equal(t, "1766", NewEvent(1766, "", Neutral).Render(loc, ""))
	require.Equal(t, "England, 1766", NewEvent(1766, "England", Neutral).Render(loc, "%2, %1"))
	require.Equal(t, "Undiscovered", UndefinedEvent(Unknown).Render(loc, ""))
	require.Equal(t, "Known to the ancients", UndefinedEvent(NotApplicable).Render(loc, ""))
	require.True(t, UndefinedEvent(Unknown).AlwaysEmit())
	require.True(t, Event{}.AlwaysEmit())
	require.Equal(t, "Undiscovered", Event{}.Render(loc, ""))
}

func TestEventOrdering(t *testing.T) {
	t.Parallel()

	ancient := UndefinedEvent(NotApplicable)
	undiscovered := UndefinedEvent(Unknown)
	early := NewEvent(1669, "Germany", Neutral)
	late := NewEvent(1898, "France", Neutral)

	require.Negative(t, ancient.Compare(early))
	require.Negative(t, ancient.Compare(undiscovered))
	require.Positive(t, early.Compare(ancient))
	require.Negative(t, early.Compare(late))
	require.Positive(t, late.Compare(early))
	require.Negative(t, late.Compare(undiscovered))
	require.Positive(t, undiscovered.Compare(ancient))
	require.Positive(t, undiscovered.Compare(late))
	require.Zero(t, undiscovered.Compare(UndefinedEvent(Unknown)))
	require.Zero(t, ancient.Compare(UndefinedEvent(NotApplicable)))
	require.Zero(t, early.Compare(NewEvent(1669, "Sweden", Estimated)))
}

func TestEnumLabelsAndColors(t *testing.T) {
	t.Parallel()

	loc := i18n.Default()
	de := i18n.New(language.German)

	series := NewEnum(NobleGas, Neutral)
	require.Equal(t, "Noble gases", series.Render(loc, ""))
	require.Equal(t, "Edelgase", series.Render(de, ""))
	require.Equal(t, SkyBlue, series.Color())

	require.Equal(t, "d-block", NewEnum(BlockD, Neutral).Render(loc, ""))
	require.Equal(t, LightScarletRed, NewEnum(BlockD, Neutral).Color())

	require.Equal(t, "Liquid at 0 deg. C", NewEnum(Liquid, Neutral).Render(loc, "%1 at 0 deg. C"))
	require.Equal(t, Chameleon, NewEnum(Liquid, Neutral).Color())

	require.Equal(t, DarkPlum, NewEnum(SimpleCubic, Neutral).Color())
	require.Equal(t, DarkPlum, NewEnum(FaceCenteredCubic, Neutral).Color())
	require.Equal(t, UndefinedColor, UndefinedEnum[LatticeKind](Unknown).Color())

	require.Negative(t, NewEnum(Nonmetal, Neutral).Compare(NewEnum(Actinide, Neutral)))
	require.Zero(t, NewEnum(Solid, Neutral).Compare(NewEnum(Solid, Estimated)))
	require.Len(t, SeriesKinds(), 10)
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	s, err := ParseSeries("alkaline earth metal")
	require.NoError(t, err)
	require.Equal(t, AlkalineEarthMetal, s)

	b, err := ParseBlock("f")
	require.NoError(t, err)
	require.Equal(t, BlockF, b)

	l, err := ParseLattice("bcc")
	require.NoError(t, err)
	require.Equal(t, BodyCenteredCubic, l)

	_, err = ParseLattice("cubic")
	require.Error(t, err)
}
