package bound_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/numrange/bound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToArray_Scenarios pins the documented sequences, including truncation.
func TestToArray_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		b    bound.Bound[int32]
		step int32
		want []int32
	}{
		{"unit ascending", bound.New[int32](1, 5), 1, []int32{1, 2, 3, 4, 5}},
		{"unit descending", bound.New[int32](5, 1), 1, []int32{5, 4, 3, 2, 1}},
		{"step 2 exact", bound.New[int32](1, 5), 2, []int32{1, 3, 5}},
		{"step 2 truncated", bound.New[int32](1, 6), 2, []int32{1, 3, 5}},
		{"descending truncated", bound.New[int32](6, 1), 2, []int32{6, 4, 2}},
		{"single point", bound.New[int32](7, 7), 3, []int32{7}},
		{"step wider than span", bound.New[int32](0, 4), 10, []int32{0}},
		{"zero step is unit", bound.New[int32](1, 3), 0, []int32{1, 2, 3}},
		{"negative step is magnitude", bound.New[int32](1, 5), -2, []int32{1, 3, 5}},
		{"negative step descending", bound.New[int32](5, 1), -2, []int32{5, 3, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.b.ToArrayStep(tc.step)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("ToArrayStep(%d) mismatch (-want +got):\n%s", tc.step, diff)
			}
		})
	}
}

// TestToArray_Properties checks length, endpoints and monotonicity for unit steps.
func TestToArray_Properties(t *testing.T) {
	pairs := [][2]int16{{0, 0}, {1, 9}, {9, 1}, {-20, 13}, {13, -20}, {-300, -299}}
	for _, p := range pairs {
		b := bound.New(p[0], p[1])
		xs, err := b.ToArray()
		require.NoError(t, err)

		span := int(p[1]) - int(p[0])
		if span < 0 {
			span = -span
		}
		require.Len(t, xs, span+1, "len = |final − start| + 1 for %v", b)
		assert.Equal(t, b.Start(), xs[0], "first element is start")
		assert.Equal(t, b.Final(), xs[len(xs)-1], "last element is final")
		for i := 1; i < len(xs); i++ {
			if b.IsDescending() {
				assert.Less(t, xs[i], xs[i-1], "strictly descending at %d", i)
			} else {
				assert.Greater(t, xs[i], xs[i-1], "strictly ascending at %d", i)
			}
		}
	}
}

// TestToArray_NarrowExtremes ensures int8 enumeration spans the full width
// without overflowing, in both directions.
func TestToArray_NarrowExtremes(t *testing.T) {
	up, err := bound.New[int8](math.MinInt8, math.MaxInt8).ToArray()
	require.NoError(t, err)
	require.Len(t, up, 256)
	assert.Equal(t, int8(math.MinInt8), up[0])
	assert.Equal(t, int8(math.MaxInt8), up[255])

	down, err := bound.New[int8](math.MaxInt8, math.MinInt8).ToArrayStep(math.MinInt8)
	require.NoError(t, err)
	assert.Equal(t, []int8{127, -1}, down, "|MinInt8| = 128 is a valid step magnitude")
}

// TestToArray_WideExtremes ensures int64 offsets near the limits are exact.
func TestToArray_WideExtremes(t *testing.T) {
	b := bound.New[int64](math.MaxInt64-4, math.MaxInt64)
	xs, err := b.ToArrayStep(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MaxInt64 - 4, math.MaxInt64 - 2, math.MaxInt64}, xs)

	full := bound.New[int64](math.MinInt64, math.MaxInt64)
	xs, err = full.ToArrayStep(math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MinInt64, -1, math.MaxInt64 - 1}, xs)
}

// TestToArray_Float covers float64 and float32 sequences at fractional steps.
func TestToArray_Float(t *testing.T) {
	xs, err := bound.New(0.0, 1.0).ToArrayStep(0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	tenths, err := bound.New(0.0, 0.3).ToArrayStep(0.1)
	require.NoError(t, err)
	require.Len(t, tenths, 4)
	assert.Equal(t, 0.3, tenths[3], "exact fit ends on final")

	down, err := bound.New[float32](1, -1).ToArrayStep(0.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0.5, 0, -0.5, -1}, down)

	short, err := bound.New(0.0, 1.0).ToArrayStep(0.4)
	require.NoError(t, err)
	require.Len(t, short, 3)
	assert.InDelta(t, 0.8, short[2], 1e-12, "final 1.0 is not reachable at 0.4")
}

// TestToArray_FloatDecimalSteps: decimal steps whose float quotient rounds
// below the true count still end on final, in both widths.
func TestToArray_FloatDecimalSteps(t *testing.T) {
	f64 := []struct {
		final float64
		n     int
	}{
		{0.3, 4},
		{0.7, 8},
		{1.7, 18},
		{2.3, 24},
	}
	for _, tc := range f64 {
		xs, err := bound.New(0.0, tc.final).ToArrayStep(0.1)
		require.NoError(t, err)
		require.Len(t, xs, tc.n, "float64 [0..%v]", tc.final)
		assert.Equal(t, tc.final, xs[len(xs)-1])
		assert.Equal(t, uint64(tc.n), bound.New(0.0, tc.final).Len(0.1))
	}

	f32 := []struct {
		final float32
		n     int
	}{
		{0.7, 8},
		{0.9, 10},
		{2.3, 24},
	}
	for _, tc := range f32 {
		b := bound.New[float32](0, tc.final)
		xs, err := b.ToArrayStep(0.1)
		require.NoError(t, err)
		require.Len(t, xs, tc.n, "float32 [0..%v]", tc.final)
		assert.Equal(t, tc.final, xs[len(xs)-1])

		last, rem, err := b.Last(0.1)
		require.NoError(t, err)
		assert.Equal(t, tc.final, last)
		assert.Zero(t, rem)
	}

	down, err := bound.New(1.7, 0.0).ToArrayStep(-0.1)
	require.NoError(t, err)
	require.Len(t, down, 18)
	assert.Equal(t, 0.0, down[17])
}

// TestToArray_FloatErrors covers non-finite endpoints and NaN steps.
func TestToArray_FloatErrors(t *testing.T) {
	_, err := bound.New(0.0, math.Inf(1)).ToArray()
	assert.ErrorIs(t, err, bound.ErrNonFinite)

	_, err = bound.New(math.NaN(), 1).ToArray()
	assert.ErrorIs(t, err, bound.ErrNonFinite)

	_, err = bound.New(0.0, 1.0).ToArrayStep(math.NaN())
	assert.ErrorIs(t, err, bound.ErrInvalidStep)

	_, err = bound.New(0.0, 1.0).ToArrayStep(1e-300)
	assert.ErrorIs(t, err, bound.ErrSpanTooLarge)
}

// TestToArray_SpanTooLarge ensures the allocation cap is enforced for integers.
func TestToArray_SpanTooLarge(t *testing.T) {
	_, err := bound.New[int64](0, math.MaxInt64).ToArray()
	require.ErrorIs(t, err, bound.ErrSpanTooLarge)
	assert.Contains(t, err.Error(), "ToArray:")
}

// TestLast reports the last reachable element and the truncated remainder.
func TestLast(t *testing.T) {
	last, rem, err := bound.New[int32](1, 6).Last(2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), last)
	assert.Equal(t, int32(1), rem)

	last, rem, err = bound.New[int32](6, 1).Last(2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), last)
	assert.Equal(t, int32(1), rem)

	last, rem, err = bound.New[int32](1, 5).Last(2)
	require.NoError(t, err)
	assert.Equal(t, int32(5), last)
	assert.Zero(t, rem)

	_, _, err = bound.New(0.0, 1.0).Last(math.NaN())
	assert.ErrorIs(t, err, bound.ErrInvalidStep)
}

// TestLen agrees with ToArrayStep and saturates for the full int64 span.
func TestLen(t *testing.T) {
	assert.Equal(t, uint64(3), bound.New[int32](1, 6).Len(2))
	assert.Equal(t, uint64(5), bound.New(0.0, 1.0).Len(0.25))
	assert.Equal(t, uint64(math.MaxUint64), bound.New[int64](math.MinInt64, math.MaxInt64).Len(1))
	assert.Zero(t, bound.New(math.NaN(), 1.0).Len(1))
}
