package scene

import "github.com/Hexumicx/raytracing/types"

// HitRecord describes a ray/surface intersection.
type HitRecord struct {
	// Intersection point and the surface normal at that point. The normal
	// always points against the incident ray.
	P      types.Vec3
	Normal types.Vec3

	// Parametric distance along the ray.
	T float64

	// True if the ray hit the outside of the surface.
	FrontFace bool

	// The material governing scattering at P.
	Mat Material
}

// Set the hit normal so that it opposes the incoming ray. The outward
// normal must be of unit length.
func (rec *HitRecord) SetFaceNormal(r types.Ray, outwardNormal types.Vec3) {
	rec.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}

// The Hittable interface is implemented by all objects that can be
// intersected by a ray. Implementations must not mutate their state from
// Hit as it is invoked concurrently by all render workers.
type Hittable interface {
	// Find the nearest intersection with parametric distance inside the
	// open interval rayT and populate rec. Returns false on a miss.
	Hit(r types.Ray, rayT types.Interval, rec *HitRecord) bool
}

// A List is a Hittable that is traversed linearly.
type List struct {
	Objects []Hittable
}

// Create a new list with the given objects.
func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

// Append an object to the list.
func (l *List) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
}

// Get the number of objects in the list.
func (l *List) Len() int {
	return len(l.Objects)
}

func (l *List) Hit(r types.Ray, rayT types.Interval, rec *HitRecord) bool {
	var tmp HitRecord
	hitAnything := false
	closest := rayT.Max

	for _, obj := range l.Objects {
		if obj.Hit(r, types.Interval{Min: rayT.Min, Max: closest}, &tmp) {
			hitAnything = true
			closest = tmp.T
			*rec = tmp
		}
	}

	return hitAnything
}
