package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/elemental/internal/value"
	elerrors "github.com/alexisbeaulieu97/elemental/pkg/errors"
)

type scaleMap map[PropertyID]*Scale

func (m scaleMap) Scale(id PropertyID) (*Scale, error) {
	s, ok := m[id]
	if !ok {
		return nil, elerrors.NewLookupError(elerrors.UnknownProperty, id.String())
	}
	return s, nil
}

func TestScaleValidity(t *testing.T) {
	t.Parallel()

	empty := NewScale(MeltingPoint.Property())
	require.False(t, empty.Valid())
	_, err := empty.Minimum()
	require.ErrorIs(t, err, elerrors.ErrDomain)
	_, err = empty.Maximum()
	require.ErrorIs(t, err, elerrors.ErrDomain)

	single := NewScale(MeltingPoint.Property())
	single.Record(value.NewValue(10.0, value.Neutral))
	single.Record(value.Undefined[float64](value.Unknown))
	require.False(t, single.Valid())
	min, err := single.Minimum()
	require.NoError(t, err)
	max, err := single.Maximum()
	require.NoError(t, err)
	require.Equal(t, min, max)

	equal := NewScale(MeltingPoint.Property())
	for i := 0; i < 5; i++ {
		equal.Record(value.NewValue(3.0, value.Neutral))
	}
	require.False(t, equal.Valid())
	_, err = equal.Midpoint(false)
	require.ErrorIs(t, err, elerrors.ErrDomain)

	distinct := NewScale(MeltingPoint.Property())
	distinct.Record(value.NewValue(1.0, value.Neutral))
	distinct.Record(value.NewValue(100.0, value.Estimated))
	require.True(t, distinct.Valid())
	min, _ = distinct.Minimum()
	max, _ = distinct.Maximum()
	require.Less(t, min, max)
}

func TestScalePositionAndMidpoint(t *testing.T) {
	t.Parallel()

	s := NewScale(AtomicMass.Property())
	s.Record(value.NewValue(1.0, value.Neutral))
	s.Record(value.NewValue(100.0, value.Neutral))
	s.Record(value.NewValue(10.0, value.Neutral))

	p, err := s.Position(value.NewValue(50.5, value.Neutral), false)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, 1e-12)

	p, err = s.Position(value.NewValue(10.0, value.Neutral), true)
	require.NoError(t, err)
	require.InDelta(t, 0.5, p, 1e-12)

	mid, err := s.Midpoint(false)
	require.NoError(t, err)
	require.InDelta(t, 50.5, mid, 1e-12)

	mid, err = s.Midpoint(true)
	require.NoError(t, err)
	require.InDelta(t, 10.0, mid, 1e-9)

	_, err = s.Position(value.Undefined[float64](value.Unknown), false)
	require.ErrorIs(t, err, elerrors.ErrInvalidArgument)
	require.NotErrorIs(t, err, elerrors.ErrDomain)
}

func TestScaleLogarithmicDomain(t *testing.T) {
	t.Parallel()

	s := NewScale(ElectronAffinity.Property())
	s.Record(value.NewValue(-10.0, value.Neutral))
	s.Record(value.NewValue(300.0, value.Neutral))

	_, err := s.Position(value.NewValue(100.0, value.Neutral), true)
	require.ErrorIs(t, err, elerrors.ErrDomain)
}

func TestScaleColor(t *testing.T) {
	t.Parallel()

	s := NewScale(MeltingPoint.Property())
	s.Record(value.NewValue(0.0, value.Neutral))
	s.Record(value.NewValue(10.0, value.Neutral))

	c, err := s.Color(value.NewValue(0.0, value.Neutral), false)
	require.NoError(t, err)
	require.Equal(t, value.ScaleStartColor.Hex(), c.Color().Hex())

	c, err = s.Color(value.NewValue(10.0, value.Neutral), false)
	require.NoError(t, err)
	require.Equal(t, value.ScaleFinishColor.Hex(), c.Color().Hex())
}

func TestColorable(t *testing.T) {
	t.Parallel()

	valid := NewScale(MeltingPoint.Property())
	valid.Record(value.NewValue(1.0, value.Neutral))
	valid.Record(value.NewValue(2.0, value.Neutral))
	scales := scaleMap{MeltingPoint: valid, BoilingPoint: NewScale(BoilingPoint.Property())}

	require.True(t, Series.Property().Colorable(scales))
	require.True(t, Color.Property().Colorable(nil))
	require.True(t, MeltingPoint.Property().Colorable(scales))
	require.False(t, BoilingPoint.Property().Colorable(scales))
	require.False(t, Configuration.Property().Colorable(scales))

	e := New(ironRecord(), nil)
	c, err := e.PropertyColor(MeltingPoint, scales, false)
	require.NoError(t, err)
	require.Equal(t, value.ScaleFinishColor.Hex(), c.Hex())
}

func TestScaleIgnoresNonFiniteValues(t *testing.T) {
	t.Parallel()

	s := NewScale(MeltingPoint.Property())
	s.Record(value.NewValue(math.NaN(), value.Neutral))
	s.Record(value.NewValue(math.Inf(1), value.Neutral))
	require.False(t, s.Observed())

	s.Record(value.NewValue(2.0, value.Neutral))
	s.Record(value.NewValue(math.NaN(), value.Neutral))
	s.Record(value.NewValue(8.0, value.Neutral))
	s.Record(value.NewValue(math.Inf(-1), value.Neutral))
	require.True(t, s.Valid())

	min, err := s.Minimum()
	require.NoError(t, err)
	require.Equal(t, 2.0, min)
	max, err := s.Maximum()
	require.NoError(t, err)
	require.Equal(t, 8.0, max)
}

func TestScaleLogarithmicMidpointDomain(t *testing.T) {
	t.Parallel()

	s := NewScale(ElectronAffinity.Property())
	s.Record(value.NewValue(-50.0, value.Neutral))
	s.Record(value.NewValue(300.0, value.Neutral))

	mid, err := s.Midpoint(false)
	require.NoError(t, err)
	require.InDelta(t, 125.0, mid, 1e-12)

	_, err = s.Midpoint(true)
	require.ErrorIs(t, err, elerrors.ErrDomain)

	zero := NewScale(ElectronAffinity.Property())
	zero.Record(value.NewValue(0.0, value.Neutral))
	zero.Record(value.NewValue(10.0, value.Neutral))
	_, err = zero.Midpoint(true)
	require.ErrorIs(t, err, elerrors.ErrDomain)
}
