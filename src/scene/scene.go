package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/WowVeryLogin/flycam/src/camcontroller/camera"
	"github.com/WowVeryLogin/flycam/src/transform"
	"github.com/qmuntal/gltf"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrNoCamera   = errors.New("no camera node")
	ErrMatrixNode = errors.New("camera node uses a matrix transform")
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// Pose is a camera placement read from a scene file. Camera is nil when the
// node's camera is not perspective.
type Pose struct {
	Name      string
	Transform transform.Transform
	Camera    *camera.Camera
}

// LoadCamera returns the first node in the glTF/GLB file at path that
// carries a camera. Only TRS node transforms are supported; parents are
// ignored.
func LoadCamera(path string) (Pose, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Pose{}, fmt.Errorf("open scene %s: %w", path, err)
	}
	pose, err := cameraPose(doc)
	if err != nil {
		return Pose{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return pose, nil
}

func cameraPose(doc *gltf.Document) (Pose, error) {
	for _, node := range doc.Nodes {
		if node.Camera == nil || *node.Camera >= len(doc.Cameras) {
			continue
		}
		if node.Matrix != [16]float64{} && node.Matrix != identityMatrix {
			return Pose{}, fmt.Errorf("%w: %q", ErrMatrixNode, node.Name)
		}

		tr := node.TranslationOrDefault()
		rot := node.RotationOrDefault()
		pose := Pose{
			Name: node.Name,
			Transform: transform.Transform{
				Translation: r3.Vec{X: tr[0], Y: tr[1], Z: tr[2]},
				Rotation:    unit(quat.Number{Real: rot[3], Imag: rot[0], Jmag: rot[1], Kmag: rot[2]}),
			},
		}

		if p := doc.Cameras[*node.Camera].Perspective; p != nil {
			far := camera.DefaultFar
			if p.Zfar != nil {
				far = *p.Zfar
			}
			aspect := 1.0
			if p.AspectRatio != nil {
				aspect = *p.AspectRatio
			}
			pose.Camera = camera.New(p.Yfov*180.0/math.Pi, aspect, p.Znear, far)
		}
		return pose, nil
	}
	return Pose{}, ErrNoCamera
}

func unit(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return transform.Identity
	}
	return quat.Scale(1/n, q)
}
