package tracer

import (
	"testing"

	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/types"
)

type constSampler float64

func (s constSampler) Float64() float64 {
	return float64(s)
}

func TestRayColorMiss(t *testing.T) {
	type spec struct {
		dir types.Vec3
		exp types.Vec3
	}
	specs := []spec{
		{types.XYZ(0, 1, 0), types.XYZ(0.5, 0.7, 1.0)},
		{types.XYZ(0, -1, 0), types.XYZ(1, 1, 1)},
		{types.XYZ(0, 0, -1), types.XYZ(0.75, 0.85, 1.0)},
		{types.XYZ(0, 10, 0), types.XYZ(0.5, 0.7, 1.0)},
	}

	world := scene.NewList()
	for index, s := range specs {
		r := types.Ray{Origin: types.XYZ(0, 0, 0), Dir: s.dir}
		out := RayColor(r, 10, world, constSampler(0.5))
		if !types.ApproxEqual(out, s.exp, 1e-9) {
			t.Fatalf("[spec %d] expected color %v; got %v", index, s.exp, out)
		}
	}
}

func TestRayColorDepthExhausted(t *testing.T) {
	r := types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 1, 0)}
	for _, depth := range []int{0, -1} {
		out := RayColor(r, depth, scene.NewList(), constSampler(0.5))
		if out != types.XYZ(0, 0, 0) {
			t.Fatalf("expected black for depth %d; got %v", depth, out)
		}
	}
}

func TestRayColorMirrorBounce(t *testing.T) {
	mirror := &scene.Metal{Albedo: types.XYZ(0.5, 0.5, 0.5)}
	world := scene.NewList(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, mirror))
	r := types.Ray{Origin: types.XYZ(0, 0, 0), Dir: types.XYZ(0, 0, -1)}

	// The single allowed bounce is spent on the hit
	out := RayColor(r, 1, world, constSampler(0.5))
	if out != types.XYZ(0, 0, 0) {
		t.Fatalf("expected black when the bounce budget is exhausted; got %v", out)
	}

	// The reflected ray travels back along +z and escapes
	exp := types.XYZ(0.375, 0.425, 0.5)
	out = RayColor(r, 2, world, constSampler(0.5))
	if !types.ApproxEqual(out, exp, 1e-9) {
		t.Fatalf("expected color %v; got %v", exp, out)
	}
}
