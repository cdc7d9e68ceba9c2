package scene

import (
	"math"

	"github.com/Hexumicx/raytracing/types"
)

type MaterialType string

const (
	LambertianMaterial MaterialType = "lambertian"
	MetalMaterial      MaterialType = "metal"
	DielectricMaterial MaterialType = "dielectric"
)

// The Material interface decides how light scatters at a surface.
type Material interface {
	// Get the material type.
	Type() MaterialType

	// Scatter an incoming ray. If ok is false the ray is absorbed.
	Scatter(in types.Ray, rec *HitRecord, s types.Sampler) (attenuation types.Vec3, scattered types.Ray, ok bool)
}

// A diffuse material.
type Lambertian struct {
	Albedo types.Vec3
}

func (m *Lambertian) Type() MaterialType { return LambertianMaterial }

func (m *Lambertian) Scatter(_ types.Ray, rec *HitRecord, s types.Sampler) (types.Vec3, types.Ray, bool) {
	dir := rec.Normal.Add(types.RandomUnitVector(s))

	// Catch degenerate scatter direction
	if dir.NearZero() {
		dir = rec.Normal
	}

	return m.Albedo, types.Ray{Origin: rec.P, Dir: dir}, true
}

// A reflective material. Fuzz in [0, 1] perturbs the reflected direction.
type Metal struct {
	Albedo types.Vec3
	Fuzz   float64
}

func (m *Metal) Type() MaterialType { return MetalMaterial }

func (m *Metal) Scatter(in types.Ray, rec *HitRecord, s types.Sampler) (types.Vec3, types.Ray, bool) {
	reflected := in.Dir.Reflect(rec.Normal).Normalize()
	if m.Fuzz > 0 {
		reflected = reflected.Add(types.RandomUnitVector(s).Mul(math.Min(m.Fuzz, 1)))
	}

	scattered := types.Ray{Origin: rec.P, Dir: reflected}
	return m.Albedo, scattered, scattered.Dir.Dot(rec.Normal) > 0
}

// A clear refractive material such as glass or water.
type Dielectric struct {
	// Refractive index in vacuum or air, or the ratio of the material's
	// refractive index over the refractive index of the enclosing medium.
	RefractionIndex float64
}

func (m *Dielectric) Type() MaterialType { return DielectricMaterial }

func (m *Dielectric) Scatter(in types.Ray, rec *HitRecord, s types.Sampler) (types.Vec3, types.Ray, bool) {
	ri := m.RefractionIndex
	if rec.FrontFace {
		ri = 1.0 / m.RefractionIndex
	}

	unitDir := in.Dir.Normalize()
	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ri*sinTheta > 1.0 || reflectance(cosTheta, ri) > s.Float64() {
		dir = unitDir.Reflect(rec.Normal)
	} else {
		dir = unitDir.Refract(rec.Normal, ri)
	}

	return types.XYZ(1, 1, 1), types.Ray{Origin: rec.P, Dir: dir}, true
}

// Schlick's approximation for reflectance.
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
