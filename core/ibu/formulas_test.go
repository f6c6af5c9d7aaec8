package ibu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/internal/errors"
)

// 28 g of 5% hops for 60 min in 19.875 L at 1.045.
func TestCalculateReferenceAddition(t *testing.T) {
	tests := []struct {
		method Method
		want   float64
	}{
		{MethodTinseth, 16.9948},
		{MethodRager, 21.7093},
		{MethodGaretz, 14.0718},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			got, err := Calculate(tt.method, 0.028, 5.0, 19.875, 60, 1.045)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(got), 1e-3)
		})
	}
}

func TestCalculateUnknownMethod(t *testing.T) {
	_, err := Calculate(MethodUnknown, 0.028, 5.0, 19.875, 60, 1.045)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeMissingBitternessMethod))
}

func TestCalculateRejectsNonPositiveVolume(t *testing.T) {
	for _, volume := range []float64{0, -1} {
		got, err := Calculate(MethodTinseth, 0.028, 5.0, unitsLiters(volume), 60, 1.045)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeInput))
		assert.Zero(t, got)
	}
}

func TestCalculateZeroMassIsZero(t *testing.T) {
	for _, m := range Methods() {
		got, err := Calculate(m, 0, 5.0, 20, 60, 1.050)
		require.NoError(t, err)
		assert.Zero(t, float64(got), m.String())
	}
}

func TestTinsethFlameoutIsZero(t *testing.T) {
	assert.Zero(t, TinsethUtilization(0, 1.050))
}

func TestUtilizationGrowsWithTime(t *testing.T) {
	for _, util := range []func(float64) float64{
		func(m float64) float64 { return TinsethUtilization(unitsMinutes(m), 1.050) },
		func(m float64) float64 { return RagerUtilization(unitsMinutes(m)) },
		func(m float64) float64 { return GaretzUtilization(unitsMinutes(m)) },
	} {
		prev := -1.0
		for m := 0.0; m <= 120; m += 5 {
			u := util(m)
			assert.GreaterOrEqual(t, u, prev)
			assert.False(t, math.IsNaN(u))
			prev = u
		}
	}
}

func TestHigherGravityLowersBitterness(t *testing.T) {
	for _, m := range Methods() {
		low, err := Calculate(m, 0.028, 5.0, 20, 60, 1.040)
		require.NoError(t, err)
		high, err := Calculate(m, 0.028, 5.0, 20, 60, 1.090)
		require.NoError(t, err)
		assert.Less(t, float64(high), float64(low), m.String())
	}
}

func TestGaretzShortAdditionContributesNothing(t *testing.T) {
	got, err := Calculate(MethodGaretz, 0.028, 5.0, 20, 5, 1.050)
	require.NoError(t, err)
	assert.Zero(t, float64(got))
}
