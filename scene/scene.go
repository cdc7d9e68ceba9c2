package scene

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// A Scene bundles a camera with the objects it looks at.
type Scene struct {
	Name   string
	Camera *Camera

	// Named materials referenced by scene objects.
	Materials map[string]Material

	// The scene geometry.
	World *List
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:      name,
		Camera:    NewCamera(),
		Materials: make(map[string]Material, 0),
		World:     NewList(),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Register a named material.
func (s *Scene) AddMaterial(name string, material Material) error {
	if material == nil {
		return fmt.Errorf("scene: nil material %q", name)
	}
	if _, exists := s.Materials[name]; exists {
		return fmt.Errorf("scene: material %q already added", name)
	}
	s.Materials[name] = material
	return nil
}

// Look up a material by name.
func (s *Scene) Material(name string) (Material, error) {
	mat, exists := s.Materials[name]
	if !exists {
		return nil, fmt.Errorf("scene: unknown material %q", name)
	}
	return mat, nil
}

// Add a sphere to the scene. The sphere material must be one of the
// registered scene materials.
func (s *Scene) AddSphere(sphere *Sphere) error {
	if sphere.Mat == nil {
		return fmt.Errorf("scene: no material assigned to sphere")
	}
	for _, mat := range s.Materials {
		if mat == sphere.Mat {
			s.World.Add(sphere)
			return nil
		}
	}

	return fmt.Errorf("scene: sphere references unknown material; ensure that the material is added to the scene before adding the sphere")
}

// Get a printable summary of the scene contents.
func (s *Scene) Stats() string {
	counts := make(map[MaterialType]int)
	for _, obj := range s.World.Objects {
		if sphere, isSphere := obj.(*Sphere); isSphere && sphere.Mat != nil {
			counts[sphere.Mat.Type()]++
		}
	}

	matTypes := make([]string, 0, len(counts))
	for matType := range counts {
		matTypes = append(matTypes, string(matType))
	}
	sort.Strings(matTypes)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material type", "Objects"})
	for _, matType := range matTypes {
		table.Append([]string{matType, fmt.Sprintf("%d", counts[MaterialType(matType)])})
	}
	table.SetFooter([]string{fmt.Sprintf("%d materials", len(s.Materials)), fmt.Sprintf("%d", s.World.Len())})
	table.Render()

	if s.Camera != nil {
		return fmt.Sprintf("scene %q\n%s\n%s", s.Name, s.Camera, buf.String())
	}
	return fmt.Sprintf("scene %q\n%s", s.Name, buf.String())
}
