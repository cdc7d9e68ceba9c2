package tracer

import (
	"math"

	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/types"
)

// Nearest accepted hit distance. Excludes self intersections caused by
// floating point error at the ray origin.
const shadowAcneEpsilon = 0.001

var (
	black   = types.XYZ(0, 0, 0)
	white   = types.XYZ(1, 1, 1)
	skyBlue = types.XYZ(0.5, 0.7, 1.0)
)

// Estimate the radiance arriving along r. The estimate follows at most
// depth scattering events; paths that exceed it contribute no light.
func RayColor(r types.Ray, depth int, world scene.Hittable, s types.Sampler) types.Vec3 {
	if depth <= 0 {
		return black
	}

	var rec scene.HitRecord
	if world.Hit(r, types.Interval{Min: shadowAcneEpsilon, Max: math.Inf(1)}, &rec) {
		attenuation, scattered, ok := rec.Mat.Scatter(r, &rec, s)
		if !ok {
			return black
		}
		return attenuation.MulVec(RayColor(scattered, depth-1, world, s))
	}

	return Background(r)
}

// Get the sky color for a ray that escapes the scene: a vertical blend
// from white at the bottom to sky blue at the top.
func Background(r types.Ray) types.Vec3 {
	unitDir := r.Dir.Normalize()
	a := 0.5 * (unitDir.Y() + 1.0)
	return white.Mul(1.0 - a).Add(skyBlue.Mul(a))
}
