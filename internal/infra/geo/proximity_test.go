package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var addisAbaba = orb.Point{38.7578, 8.9806}

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  orb.Point
		to    orb.Point
		want  float64
		delta float64
	}{
		{
			name: "identical points",
			from: addisAbaba,
			to:   addisAbaba,
			want: 0,
		},
		{
			name: "identical points off the equator",
			from: orb.Point{38.74, 9.03},
			to:   orb.Point{38.74, 9.03},
			want: 0,
		},
		{
			name:  "antipodal points",
			from:  orb.Point{0, 0},
			to:    orb.Point{180, 0},
			want:  math.Pi * EarthRadiusKm,
			delta: 1e-6,
		},
		{
			name:  "one degree of latitude",
			from:  orb.Point{0, 0},
			to:    orb.Point{0, 1},
			want:  EarthRadiusKm * math.Pi / 180,
			delta: 1e-6,
		},
		{
			name:  "addis ababa to nairobi",
			from:  addisAbaba,
			to:    orb.Point{36.8219, -1.2921},
			want:  1161,
			delta: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.from, tt.to)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	other := orb.Point{39.47, 9.12}
	assert.InDelta(t, DistanceKm(addisAbaba, other), DistanceKm(other, addisAbaba), 1e-9)
}

func TestWithin(t *testing.T) {
	t.Parallel()

	oneDegree := EarthRadiusKm * math.Pi / 180
	north := orb.Point{0, 1}

	assert.True(t, Within(orb.Point{0, 0}, orb.Point{0, 0}, 0))
	assert.True(t, Within(addisAbaba, addisAbaba, 0))
	assert.True(t, Within(orb.Point{38.74, 9.03}, orb.Point{38.74, 9.03}, 0))
	assert.False(t, Within(orb.Point{38.74, 9.03}, orb.Point{38.7401, 9.03}, 0))
	assert.True(t, Within(orb.Point{0, 0}, north, oneDegree+1e-6))
	assert.False(t, Within(orb.Point{0, 0}, north, oneDegree-1e-3))
}

func TestBoundAround_ContainsRadius(t *testing.T) {
	t.Parallel()

	radiusKm := 10.0
	bound, ok := BoundAround(addisAbaba, radiusKm)
	assert.True(t, ok)
	assert.True(t, bound.Contains(addisAbaba))

	// Points exactly on the radius in the four cardinal directions stay inside the box.
	latDelta := radiusKm / EarthRadiusKm * 180 / math.Pi
	for _, p := range []orb.Point{
		{addisAbaba.Lon(), addisAbaba.Lat() + latDelta},
		{addisAbaba.Lon(), addisAbaba.Lat() - latDelta},
	} {
		assert.InDelta(t, radiusKm, DistanceKm(addisAbaba, p), 1e-6)
		assert.True(t, bound.Contains(p), "point %v outside bound %v", p, bound)
	}

	far := orb.Point{addisAbaba.Lon(), addisAbaba.Lat() + 2*latDelta}
	assert.False(t, bound.Contains(far))
}

func TestBoundAround_SkipsWrappingBoxes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		center   orb.Point
		radiusKm float64
	}{
		{name: "antimeridian", center: orb.Point{179.99, 0}, radiusKm: 50},
		{name: "north pole", center: orb.Point{0, 89.99}, radiusKm: 50},
		{name: "negative radius", center: addisAbaba, radiusKm: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := BoundAround(tt.center, tt.radiusKm)
			assert.False(t, ok)
		})
	}
}

func TestProximityCalculator_DelegatesToPackageFunctions(t *testing.T) {
	t.Parallel()

	calc := NewProximityCalculator()
	other := orb.Point{38.8, 9.0}

	assert.InDelta(t, DistanceKm(addisAbaba, other), calc.DistanceKm(addisAbaba, other), 1e-12)

	bound, ok := calc.BoundAround(addisAbaba, 5)
	assert.True(t, ok)
	assert.True(t, bound.Contains(addisAbaba))
}
