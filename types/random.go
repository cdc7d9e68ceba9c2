package types

import (
	"math"
	"math/rand/v2"
)

// A Sampler yields uniform random numbers in [0, 1). Samplers are owned by
// a single goroutine and are not safe for concurrent use.
type Sampler interface {
	Float64() float64
}

// Create a PCG backed sampler from a pair of seed values.
func NewSampler(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Get a random value in [min, max).
func RandomRange(s Sampler, min, max float64) float64 {
	return min + (max-min)*s.Float64()
}

// Get a vector whose components are random values in [min, max).
func RandomVec3(s Sampler, min, max float64) Vec3 {
	return Vec3{RandomRange(s, min, max), RandomRange(s, min, max), RandomRange(s, min, max)}
}

// Get a random point inside the unit disk on the XY plane.
func RandomInUnitDisk(s Sampler) Vec3 {
	for {
		p := Vec3{RandomRange(s, -1, 1), RandomRange(s, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Get a random unit length vector.
func RandomUnitVector(s Sampler) Vec3 {
	for {
		p := RandomVec3(s, -1, 1)
		lenSq := p.LenSq()
		if 1e-160 < lenSq && lenSq <= 1 {
			return p.Div(math.Sqrt(lenSq))
		}
	}
}
