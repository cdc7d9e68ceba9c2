package scene

import (
	"fmt"
	"sort"

	"github.com/Hexumicx/raytracing/types"
)

// Description is the serializable form of a scene.
type Description struct {
	Name      string                `json:"name"`
	Camera    *CameraDescription    `json:"camera,omitempty"`
	Materials []MaterialDescription `json:"materials"`
	Objects   []ObjectDescription   `json:"objects"`
}

// CameraDescription lists optional camera settings. Fields that are not
// set keep the values of NewCamera.
type CameraDescription struct {
	AspectRatio     *float64    `json:"aspect_ratio,omitempty"`
	ImageWidth      *int        `json:"image_width,omitempty"`
	SamplesPerPixel *int        `json:"samples_per_pixel,omitempty"`
	MaxDepth        *int        `json:"max_depth,omitempty"`
	VFov            *float64    `json:"vfov,omitempty"`
	LookFrom        *types.Vec3 `json:"look_from,omitempty"`
	LookAt          *types.Vec3 `json:"look_at,omitempty"`
	VUp             *types.Vec3 `json:"vup,omitempty"`
	DefocusAngle    *float64    `json:"defocus_angle,omitempty"`
	FocusDist       *float64    `json:"focus_dist,omitempty"`
}

type MaterialDescription struct {
	Name            string       `json:"name"`
	Type            MaterialType `json:"type"`
	Albedo          types.Vec3   `json:"albedo"`
	Fuzz            float64      `json:"fuzz,omitempty"`
	RefractionIndex float64      `json:"refraction_index,omitempty"`
}

type ObjectDescription struct {
	Type     string     `json:"type"`
	Center   types.Vec3 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

const sphereObject = "sphere"

// Build a scene from its description.
func FromDescription(desc *Description) (*Scene, error) {
	sc := NewScene(desc.Name)
	if desc.Camera != nil {
		desc.Camera.apply(sc.Camera)
	}

	for idx, matDesc := range desc.Materials {
		mat, err := matDesc.material()
		if err != nil {
			return nil, fmt.Errorf("scene: material %d: %w", idx, err)
		}
		if err = sc.AddMaterial(matDesc.Name, mat); err != nil {
			return nil, err
		}
	}

	for idx, objDesc := range desc.Objects {
		if objDesc.Type != sphereObject {
			return nil, fmt.Errorf("scene: object %d: unsupported type %q", idx, objDesc.Type)
		}
		mat, err := sc.Material(objDesc.Material)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", idx, err)
		}
		if err = sc.AddSphere(NewSphere(objDesc.Center, objDesc.Radius, mat)); err != nil {
			return nil, err
		}
	}

	return sc, nil
}

// Describe converts the scene into its serializable form. Materials are
// emitted in name order.
func (s *Scene) Describe() (*Description, error) {
	desc := &Description{
		Name:      s.Name,
		Materials: make([]MaterialDescription, 0, len(s.Materials)),
		Objects:   make([]ObjectDescription, 0, s.World.Len()),
	}
	if s.Camera != nil {
		desc.Camera = describeCamera(s.Camera)
	}

	names := make([]string, 0, len(s.Materials))
	for name := range s.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	matNames := make(map[Material]string, len(names))
	for _, name := range names {
		mat := s.Materials[name]
		matDesc := MaterialDescription{Name: name, Type: mat.Type()}
		switch m := mat.(type) {
		case *Lambertian:
			matDesc.Albedo = m.Albedo
		case *Metal:
			matDesc.Albedo = m.Albedo
			matDesc.Fuzz = m.Fuzz
		case *Dielectric:
			matDesc.RefractionIndex = m.RefractionIndex
		default:
			return nil, fmt.Errorf("scene: material %q has unsupported type %T", name, mat)
		}
		desc.Materials = append(desc.Materials, matDesc)
		matNames[mat] = name
	}

	for idx, obj := range s.World.Objects {
		sphere, isSphere := obj.(*Sphere)
		if !isSphere {
			return nil, fmt.Errorf("scene: object %d has unsupported type %T", idx, obj)
		}
		name, known := matNames[sphere.Mat]
		if !known {
			return nil, fmt.Errorf("scene: object %d references an unregistered material", idx)
		}
		desc.Objects = append(desc.Objects, ObjectDescription{
			Type:     sphereObject,
			Center:   sphere.Center,
			Radius:   sphere.Radius,
			Material: name,
		})
	}

	return desc, nil
}

func (d MaterialDescription) material() (Material, error) {
	switch d.Type {
	case LambertianMaterial:
		return &Lambertian{Albedo: d.Albedo}, nil
	case MetalMaterial:
		return &Metal{Albedo: d.Albedo, Fuzz: d.Fuzz}, nil
	case DielectricMaterial:
		if d.RefractionIndex <= 0 {
			return nil, fmt.Errorf("dielectric %q requires a positive refraction index", d.Name)
		}
		return &Dielectric{RefractionIndex: d.RefractionIndex}, nil
	default:
		return nil, fmt.Errorf("unsupported material type %q", d.Type)
	}
}

func (d *CameraDescription) apply(c *Camera) {
	if d.AspectRatio != nil {
		c.AspectRatio = *d.AspectRatio
	}
	if d.ImageWidth != nil {
		c.ImageWidth = *d.ImageWidth
	}
	if d.SamplesPerPixel != nil {
		c.SamplesPerPixel = *d.SamplesPerPixel
	}
	if d.MaxDepth != nil {
		c.MaxDepth = *d.MaxDepth
	}
	if d.VFov != nil {
		c.VFov = *d.VFov
	}
	if d.LookFrom != nil {
		c.LookFrom = *d.LookFrom
	}
	if d.LookAt != nil {
		c.LookAt = *d.LookAt
	}
	if d.VUp != nil {
		c.VUp = *d.VUp
	}
	if d.DefocusAngle != nil {
		c.DefocusAngle = *d.DefocusAngle
	}
	if d.FocusDist != nil {
		c.FocusDist = *d.FocusDist
	}
}

func describeCamera(c *Camera) *CameraDescription {
	lookFrom, lookAt, vup := c.LookFrom, c.LookAt, c.VUp
	aspect, width, spp, depth := c.AspectRatio, c.ImageWidth, c.SamplesPerPixel, c.MaxDepth
	vfov, defocus, focus := c.VFov, c.DefocusAngle, c.FocusDist
	return &CameraDescription{
		AspectRatio:     &aspect,
		ImageWidth:      &width,
		SamplesPerPixel: &spp,
		MaxDepth:        &depth,
		VFov:            &vfov,
		LookFrom:        &lookFrom,
		LookAt:          &lookAt,
		VUp:             &vup,
		DefocusAngle:    &defocus,
		FocusDist:       &focus,
	}
}
