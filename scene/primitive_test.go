package scene

import (
	"math"
	"testing"

	"github.com/Hexumicx/raytracing/types"
)

var hitRange = types.Interval{Min: 0.001, Max: math.Inf(1)}

func TestSphereHit(t *testing.T) {
	mat := &Lambertian{Albedo: types.XYZ(0.5, 0.5, 0.5)}
	sphere := NewSphere(types.XYZ(0, 0, -1), 0.5, mat)

	type spec struct {
		ray          types.Ray
		rayT         types.Interval
		expHit       bool
		expT         float64
		expNormal    types.Vec3
		expFrontFace bool
	}
	specs := []spec{
		// Outside looking in
		{types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}, hitRange, true, 0.5, types.XYZ(0, 0, 1), true},
		// Un-normalized direction scales t
		{types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -2)}, hitRange, true, 0.25, types.XYZ(0, 0, 1), true},
		// Inside looking out
		{types.Ray{Origin: types.XYZ(0, 0, -1), Dir: types.XYZ(0, 0, -1)}, hitRange, true, 0.5, types.XYZ(0, 0, 1), false},
		// Miss
		{types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 1, 0)}, hitRange, false, 0, types.Vec3{}, false},
		// Both roots outside the accepted range
		{types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}, types.Interval{Min: 0.001, Max: 0.4}, false, 0, types.Vec3{}, false},
		// Sphere behind the ray
		{types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, 1)}, hitRange, false, 0, types.Vec3{}, false},
	}

	for index, s := range specs {
		var rec HitRecord
		hit := sphere.Hit(s.ray, s.rayT, &rec)
		if hit != s.expHit {
			t.Fatalf("[spec %d] expected hit to be %t", index, s.expHit)
		}
		if !hit {
			continue
		}

		if math.Abs(rec.T-s.expT) > 1e-12 {
			t.Fatalf("[spec %d] expected t %f; got %f", index, s.expT, rec.T)
		}
		if !vecClose(rec.Normal, s.expNormal) {
			t.Fatalf("[spec %d] expected normal %v; got %v", index, s.expNormal, rec.Normal)
		}
		if rec.FrontFace != s.expFrontFace {
			t.Fatalf("[spec %d] expected front face to be %t", index, s.expFrontFace)
		}
		if rec.Mat != Material(mat) {
			t.Fatalf("[spec %d] expected hit record to reference the sphere material", index)
		}
	}
}

func TestNegativeRadiusIsClamped(t *testing.T) {
	if sphere := NewSphere(types.XYZ(0, 0, 0), -2, nil); sphere.Radius != 0 {
		t.Fatalf("expected radius to be clamped to 0; got %f", sphere.Radius)
	}
}

func TestListReportsClosestHit(t *testing.T) {
	near := &Lambertian{Albedo: types.XYZ(1, 0, 0)}
	far := &Lambertian{Albedo: types.XYZ(0, 1, 0)}
	world := NewList(
		NewSphere(types.XYZ(0, 0, -3), 0.5, far),
		NewSphere(types.XYZ(0, 0, -1), 0.5, near),
	)

	var rec HitRecord
	if !world.Hit(types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}, hitRange, &rec) {
		t.Fatal("expected ray to hit the list")
	}
	if rec.T != 0.5 || rec.Mat != Material(near) {
		t.Fatalf("expected the nearest sphere at t=0.5 to be reported; got t=%f", rec.T)
	}

	if NewList().Hit(types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}, hitRange, &rec) {
		t.Fatal("expected empty list to report no hit")
	}
}
