package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/math/f64"
)

const floatCmpEpsilon = 1e-8

// Vec3 is used for points, directions and linear RGB colors.
type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return v.Mul(1.0 / s)
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get squared vector length.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 3 component vector. Zero length vectors are returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return v
	}
	return v.Mul(1.0 / l)
}

// Returns true if all components are close to zero.
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v[0]) < s && math.Abs(v[1]) < s && math.Abs(v[2]) < s
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Reflect v around normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract unit vector v through a surface with normal n.
func (v Vec3) Refract(n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Neg().Dot(n), 1.0)
	rOutPerp := v.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.LenSq())))
	return rOutPerp.Add(rOutParallel)
}

// Check whether two vectors are equal within the given threshold.
func ApproxEqual(v1, v2 Vec3, threshold float64) bool {
	for i := 0; i < 3; i++ {
		if !mgl64.FloatEqualThreshold(v1[i], v2[i], threshold) {
			return false
		}
	}
	return true
}

// Convert degrees to radians.
func DegToRad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}
