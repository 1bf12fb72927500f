// Package physics provides the 3D ray query the camera uses to avoid
// clipping through level geometry. Level geometry is a set of axis-aligned
// boxes; the query returns the nearest solid, non-sensor hit.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

// Box is an axis-aligned solid in world space. Sensor boxes are trigger
// volumes and never block rays.
type Box struct {
	Min, Max mgl64.Vec3
	Sensor   bool
}

// NewBox builds a Box from a corner and a size, normalizing negative sizes.
func NewBox(corner, size mgl64.Vec3) Box {
	min, max := corner, corner.Add(size)
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	return Box{Min: min, Max: max}
}

// Contains reports whether p lies inside the box.
func (b *Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Hit is the nearest intersection of a ray with the level geometry.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
}

// Filter narrows which boxes a ray may hit.
type Filter struct {
	// ExcludeSensors skips trigger volumes.
	ExcludeSensors bool
	// Exclude skips specific boxes (e.g. the caster's own collider).
	Exclude func(*Box) bool
}

// CastRay returns the nearest hit among boxes along dir within maxDist.
// dir is normalized internally; a zero direction or non-positive distance
// never hits. The query is solid: a ray starting inside a box hits at
// distance zero.
func CastRay(boxes []Box, origin, dir mgl64.Vec3, maxDist float64, filter Filter) (Hit, bool) {
	if maxDist <= 0 || dir.Len() < epsilon {
		return Hit{}, false
	}
	dir = dir.Normalize()

	closest := math.Inf(1)
	found := false
	for i := range boxes {
		b := &boxes[i]
		if filter.ExcludeSensors && b.Sensor {
			continue
		}
		if filter.Exclude != nil && filter.Exclude(b) {
			continue
		}
		if t, ok := segmentBoxHit(origin, dir, maxDist, b); ok && t < closest {
			closest = t
			found = true
		}
	}
	if !found {
		return Hit{}, false
	}
	return Hit{Point: origin.Add(dir.Mul(closest)), Distance: closest}, true
}

// segmentBoxHit is the slab test: intersect the parameter interval of the
// segment with each axis slab and report the entry distance.
func segmentBoxHit(origin, dir mgl64.Vec3, maxDist float64, b *Box) (float64, bool) {
	tmin, tmax := 0.0, maxDist
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < epsilon {
			// Ray parallel to this slab; miss unless origin lies within it.
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
