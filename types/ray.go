package types

import "fmt"

// A ray is parametrized as Origin + t*Dir. Dir is not necessarily normalized.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Get the point along the ray at parametric distance t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

func (r Ray) String() string {
	return fmt.Sprintf("ray(o: (%3.3f, %3.3f, %3.3f), d: (%3.3f, %3.3f, %3.3f))",
		r.Origin[0], r.Origin[1], r.Origin[2],
		r.Dir[0], r.Dir[1], r.Dir[2],
	)
}
