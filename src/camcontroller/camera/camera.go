package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultFOV  = 50.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Camera is the renderable half of a camera entity: a perspective
// projection.
// The entity's transform.Transform supplies the view.
type Camera struct {
	FOV    float64
	Near   float64
	Far    float64
	Aspect float64

	projection *mat.Dense
}

func New(fov float64, aspect float64, near float64, far float64) *Camera {
	c := &Camera{
		FOV:  fov,
		Near: near,
		Far:  far,
	}
	c.Update(aspect)
	return c
}

func Default(aspect float64) *Camera {
	return New(DefaultFOV, aspect, DefaultNear, DefaultFar)
}

// Update recomputes the projection for a new aspect ratio. Non-positive
// aspects (minimised window) keep the previous projection.
func (c *Camera) Update(aspect float64) {
	if aspect <= 0 {
		if c.projection != nil {
			return
		}
		aspect = 1
	}
	c.Aspect = aspect
	s := 1.0 / math.Tan(c.FOV*0.5*math.Pi/180.0)
	c.projection = mat.NewDense(4, 4, []float64{
		s / aspect, 0, 0, 0,
		0, s, 0, 0,
		0, 0, c.Far / (c.Near - c.Far), c.Far * c.Near / (c.Near - c.Far),
		0, 0, -1, 0,
	})
}

// Projection maps right-handed view space (looking down -Z) into clip space
// with depth in [0, 1].
func (c *Camera) Projection() *mat.Dense {
	if c.projection == nil {
		c.Update(c.Aspect)
	}
	return c.projection
}
