package scene

import (
	"math"

	"github.com/Hexumicx/raytracing/types"
)

// A sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float64
	Mat    Material
}

// Create new sphere primitive. Negative radii are clamped to zero.
func NewSphere(center types.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: math.Max(0, radius),
		Mat:    mat,
	}
}

func (s *Sphere) Hit(r types.Ray, rayT types.Interval, rec *HitRecord) bool {
	oc := s.Center.Sub(r.Origin)
	a := r.Dir.LenSq()
	h := r.Dir.Dot(oc)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root that lies in the acceptable range.
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.P = r.At(root)
	rec.SetFaceNormal(r, rec.P.Sub(s.Center).Div(s.Radius))
	rec.Mat = s.Mat
	return true
}
