package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/types"
)

type constSampler float64

func (s constSampler) Float64() float64 {
	return float64(s)
}

func centeredSamples(_ int) types.Sampler {
	return constSampler(0.5)
}

type panicHittable struct{}

func (panicHittable) Hit(_ types.Ray, _ types.Interval, _ *scene.HitRecord) bool {
	panic("boom")
}

func mirrorSphereScene(t *testing.T) *scene.Scene {
	sc := scene.NewScene("mirror")
	sc.Camera.ImageWidth = 4
	sc.Camera.SamplesPerPixel = 1
	sc.Camera.MaxDepth = 1

	if err := sc.AddMaterial("mirror", &scene.Metal{Albedo: types.XYZ(0.8, 0.8, 0.8)}); err != nil {
		t.Fatal(err)
	}
	mat, _ := sc.Material("mirror")
	if err := sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, mat)); err != nil {
		t.Fatal(err)
	}
	return sc
}

// The sky color seen through the center of pixel (i, j) of a 4x4 frame with
// a 90 degree field of view looking down -z.
func expSkyColor(i, j int) types.Vec3 {
	dir := types.XYZ(-0.75+0.5*float64(i), 0.75-0.5*float64(j), -1)
	a := 0.5 * (dir.Y()/dir.Len() + 1)
	return types.XYZ(1-0.5*a, 1-0.3*a, 1)
}

func TestRenderMirrorSphere(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 16} {
		fb, stats, err := Render(mirrorSphereScene(t), Options{Workers: workers, NewSampler: centeredSamples})
		if err != nil {
			t.Fatal(err)
		}

		if fb.Width != 4 || fb.Height != 4 || len(fb.Pix) != 16 {
			t.Fatalf("[workers %d] expected a 4x4 frame; got %dx%d with %d pixels", workers, fb.Width, fb.Height, len(fb.Pix))
		}

		for j := 0; j < 4; j++ {
			for i := 0; i < 4; i++ {
				exp := expSkyColor(i, j)

				// The center pixels see the sphere and run out of bounces
				if i >= 1 && i <= 2 && j >= 1 && j <= 2 {
					exp = types.XYZ(0, 0, 0)
				}

				if got := fb.At(i, j); !types.ApproxEqual(got, exp, 1e-9) {
					t.Fatalf("[workers %d] expected pixel (%d, %d) to be %v; got %v", workers, i, j, exp, got)
				}
			}
		}

		expTracers := int(math.Min(float64(workers), 4))
		if len(stats.Tracers) != expTracers {
			t.Fatalf("[workers %d] expected %d tracer stats; got %d", workers, expTracers, len(stats.Tracers))
		}
		rows := 0
		for _, stat := range stats.Tracers {
			rows += stat.BlockH
		}
		if rows != 4 {
			t.Fatalf("[workers %d] expected tracer blocks to cover 4 rows; got %d", workers, rows)
		}
	}
}

func TestRenderAveragesSamples(t *testing.T) {
	sc := scene.NewScene("sky")
	sc.Camera.ImageWidth = 2
	sc.Camera.SamplesPerPixel = 7

	fb, _, err := Render(sc, Options{Workers: 2, NewSampler: centeredSamples})
	if err != nil {
		t.Fatal(err)
	}

	cam := sc.Camera
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r := cam.Ray(i, j, constSampler(0.5))
			unitY := r.Dir.Normalize().Y()
			a := 0.5 * (unitY + 1)
			exp := types.XYZ(1-0.5*a, 1-0.3*a, 1)
			if got := fb.At(i, j); !types.ApproxEqual(got, exp, 1e-9) {
				t.Fatalf("expected pixel (%d, %d) to be %v; got %v", i, j, exp, got)
			}
		}
	}
}

func TestRenderIsReproducibleForSeed(t *testing.T) {
	newScene := func() *scene.Scene {
		sc := scene.NewScene("diffuse")
		sc.Camera.ImageWidth = 8
		sc.Camera.SamplesPerPixel = 4
		sc.Camera.MaxDepth = 4
		if err := sc.AddMaterial("ground", &scene.Lambertian{Albedo: types.XYZ(0.5, 0.5, 0.5)}); err != nil {
			t.Fatal(err)
		}
		mat, _ := sc.Material("ground")
		if err := sc.AddSphere(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, mat)); err != nil {
			t.Fatal(err)
		}
		return sc
	}

	opts := Options{Workers: 3, Seed: 42}
	fb1, _, err := Render(newScene(), opts)
	if err != nil {
		t.Fatal(err)
	}
	fb2, _, err := Render(newScene(), opts)
	if err != nil {
		t.Fatal(err)
	}

	for idx := range fb1.Pix {
		if fb1.Pix[idx] != fb2.Pix[idx] {
			t.Fatalf("expected pixel %d to match across renders; got %v and %v", idx, fb1.Pix[idx], fb2.Pix[idx])
		}
	}
}

func TestRenderValidation(t *testing.T) {
	if _, _, err := Render(nil, Options{}); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}

	sc := scene.NewScene("no camera")
	sc.Camera = nil
	if _, _, err := Render(sc, Options{}); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined; got %v", err)
	}

	sc = scene.NewScene("bad camera")
	sc.Camera.ImageWidth = 0
	if _, _, err := Render(sc, Options{}); !errors.Is(err, scene.ErrInvalidImageWidth) {
		t.Fatalf("expected ErrInvalidImageWidth; got %v", err)
	}
}

func TestRenderAggregatesWorkerPanics(t *testing.T) {
	sc := scene.NewScene("panic")
	sc.Camera.ImageWidth = 4
	sc.Camera.SamplesPerPixel = 1
	sc.World.Add(panicHittable{})

	_, _, err := Render(sc, Options{Workers: 2, NewSampler: centeredSamples})
	if !errors.Is(err, ErrWorkerPanic) {
		t.Fatalf("expected error to wrap ErrWorkerPanic; got %v", err)
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected a joined error; got %T", err)
	}
	if errCount := len(joined.Unwrap()); errCount != 2 {
		t.Fatalf("expected one error per worker; got %d", errCount)
	}
}

func TestFrameStatsTable(t *testing.T) {
	_, stats, err := Render(mirrorSphereScene(t), Options{Workers: 2, NewSampler: centeredSamples})
	if err != nil {
		t.Fatal(err)
	}

	if table := stats.Table(); table == "" {
		t.Fatal("expected a non-empty stats table")
	}
}
