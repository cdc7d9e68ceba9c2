// Package builtin provides ready-made scenes that can be rendered without a
// scene file.
package builtin

import (
	"fmt"
	"sort"

	"github.com/Hexumicx/raytracing/scene"
	"github.com/Hexumicx/raytracing/types"
)

// Seed used for the random placement of the final scene spheres.
const finalSceneSeed = 0xC0FFEE

var registry = map[string]func() (*scene.Scene, error){
	"final":         Final,
	"three-spheres": ThreeSpheres,
	"single-sphere": SingleSphere,
}

// Get the names of all builtin scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build the builtin scene with the given name.
func Load(name string) (*scene.Scene, error) {
	ctor, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("builtin: unknown scene %q", name)
	}
	return ctor()
}

// A single diffuse sphere resting on a large ground sphere.
func SingleSphere() (*scene.Scene, error) {
	sc := scene.NewScene("single-sphere")
	ground := &scene.Lambertian{Albedo: types.XYZ(0.8, 0.8, 0.0)}
	center := &scene.Lambertian{Albedo: types.XYZ(0.1, 0.2, 0.5)}

	if err := addMaterials(sc, map[string]scene.Material{"ground": ground, "center": center}); err != nil {
		return nil, err
	}
	return sc, addSpheres(sc,
		scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground),
		scene.NewSphere(types.XYZ(0, 0, -1.2), 0.5, center),
	)
}

// A diffuse, a glass bubble and a fuzzy metal sphere side by side.
func ThreeSpheres() (*scene.Scene, error) {
	sc := scene.NewScene("three-spheres")
	sc.Camera.AspectRatio = 16.0 / 9.0
	sc.Camera.ImageWidth = 400
	sc.Camera.SamplesPerPixel = 100
	sc.Camera.MaxDepth = 50
	sc.Camera.VFov = 20
	sc.Camera.LookFrom = types.XYZ(-2, 2, 1)
	sc.Camera.LookAt = types.XYZ(0, 0, -1)
	sc.Camera.DefocusAngle = 10.0
	sc.Camera.FocusDist = 3.4

	ground := &scene.Lambertian{Albedo: types.XYZ(0.8, 0.8, 0.0)}
	center := &scene.Lambertian{Albedo: types.XYZ(0.1, 0.2, 0.5)}
	left := &scene.Dielectric{RefractionIndex: 1.50}
	bubble := &scene.Dielectric{RefractionIndex: 1.00 / 1.50}
	right := &scene.Metal{Albedo: types.XYZ(0.8, 0.6, 0.2), Fuzz: 1.0}

	err := addMaterials(sc, map[string]scene.Material{
		"ground": ground,
		"center": center,
		"left":   left,
		"bubble": bubble,
		"right":  right,
	})
	if err != nil {
		return nil, err
	}

	return sc, addSpheres(sc,
		scene.NewSphere(types.XYZ(0, -100.5, -1), 100, ground),
		scene.NewSphere(types.XYZ(0, 0, -1.2), 0.5, center),
		scene.NewSphere(types.XYZ(-1, 0, -1), 0.5, left),
		scene.NewSphere(types.XYZ(-1, 0, -1), 0.4, bubble),
		scene.NewSphere(types.XYZ(1, 0, -1), 0.5, right),
	)
}

// A field of small random spheres around three large ones.
func Final() (*scene.Scene, error) {
	sc := scene.NewScene("final")
	sc.Camera.AspectRatio = 16.0 / 9.0
	sc.Camera.ImageWidth = 1200
	sc.Camera.SamplesPerPixel = 500
	sc.Camera.MaxDepth = 50
	sc.Camera.VFov = 20
	sc.Camera.LookFrom = types.XYZ(13, 2, 3)
	sc.Camera.LookAt = types.XYZ(0, 0, 0)
	sc.Camera.VUp = types.XYZ(0, 1, 0)
	sc.Camera.DefocusAngle = 0.6
	sc.Camera.FocusDist = 10.0

	ground := &scene.Lambertian{Albedo: types.XYZ(0.5, 0.5, 0.5)}
	glass := &scene.Dielectric{RefractionIndex: 1.5}
	brown := &scene.Lambertian{Albedo: types.XYZ(0.4, 0.2, 0.1)}
	steel := &scene.Metal{Albedo: types.XYZ(0.7, 0.6, 0.5), Fuzz: 0.0}

	err := addMaterials(sc, map[string]scene.Material{
		"ground": ground,
		"glass":  glass,
		"brown":  brown,
		"steel":  steel,
	})
	if err != nil {
		return nil, err
	}
	if err = addSpheres(sc, scene.NewSphere(types.XYZ(0, -1000, 0), 1000, ground)); err != nil {
		return nil, err
	}

	rng := types.NewSampler(finalSceneSeed, 0)
	clearing := types.XYZ(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := types.XYZ(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(clearing).Len() <= 0.9 {
				continue
			}

			var mat scene.Material
			switch {
			case chooseMat < 0.8:
				mat = &scene.Lambertian{Albedo: types.RandomVec3(rng, 0, 1).MulVec(types.RandomVec3(rng, 0, 1))}
			case chooseMat < 0.95:
				mat = &scene.Metal{Albedo: types.RandomVec3(rng, 0.5, 1), Fuzz: types.RandomRange(rng, 0, 0.5)}
			default:
				mat = glass
			}

			if mat != glass {
				if err = sc.AddMaterial(fmt.Sprintf("sphere_%d_%d", a+11, b+11), mat); err != nil {
					return nil, err
				}
			}
			if err = sc.AddSphere(scene.NewSphere(center, 0.2, mat)); err != nil {
				return nil, err
			}
		}
	}

	return sc, addSpheres(sc,
		scene.NewSphere(types.XYZ(0, 1, 0), 1.0, glass),
		scene.NewSphere(types.XYZ(-4, 1, 0), 1.0, brown),
		scene.NewSphere(types.XYZ(4, 1, 0), 1.0, steel),
	)
}

func addMaterials(sc *scene.Scene, materials map[string]scene.Material) error {
	for name, mat := range materials {
		if err := sc.AddMaterial(name, mat); err != nil {
			return err
		}
	}
	return nil
}

func addSpheres(sc *scene.Scene, spheres ...*scene.Sphere) error {
	for _, sphere := range spheres {
		if err := sc.AddSphere(sphere); err != nil {
			return err
		}
	}
	return nil
}
