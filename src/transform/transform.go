package transform

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

var Identity = quat.Number{Real: 1}

// Transform is the position and orientation of an entity in world space.
// Rotation is kept as a unit quaternion.
type Transform struct {
	Translation r3.Vec
	Rotation    quat.Number
}

func FromXYZ(x, y, z float64) Transform {
	return Transform{
		Translation: r3.Vec{X: x, Y: y, Z: z},
		Rotation:    Identity,
	}
}

func AxisAngle(axis r3.Vec, radians float64) quat.Number {
	return quat.Number(r3.NewRotation(radians, axis))
}

// FromYawPitch composes a roll-free orientation: yaw about world up first,
// then pitch about the resulting local right axis.
func FromYawPitch(yaw, pitch float64) quat.Number {
	return quat.Mul(AxisAngle(AxisY, yaw), AxisAngle(AxisX, pitch))
}

// Rotate applies the orientation to v. A zero Rotation is treated as the
// identity so that a zero Transform is usable.
func (t Transform) Rotate(v r3.Vec) r3.Vec {
	if t.Rotation == (quat.Number{}) {
		return v
	}
	return r3.Rotation(t.Rotation).Rotate(v)
}

func (t Transform) LocalX() r3.Vec { return t.Rotate(AxisX) }
func (t Transform) LocalY() r3.Vec { return t.Rotate(AxisY) }
func (t Transform) LocalZ() r3.Vec { return t.Rotate(AxisZ) }

// Forward is the direction the entity faces (local -Z).
func (t Transform) Forward() r3.Vec { return r3.Scale(-1, t.LocalZ()) }

func (t Transform) Right() r3.Vec { return t.LocalX() }

// LookingAt returns t rotated so that Forward points at target and LocalY
// lies in the plane of up and the view direction. Degenerate input returns t
// unchanged.
func (t Transform) LookingAt(target, up r3.Vec) Transform {
	dir := r3.Sub(target, t.Translation)
	if r3.Norm(dir) == 0 || r3.Norm(up) == 0 {
		return t
	}
	back := r3.Unit(r3.Scale(-1, dir))
	right := r3.Cross(up, back)
	if r3.Norm(right) < 1e-12 {
		return t
	}
	right = r3.Unit(right)
	newUp := r3.Cross(back, right)

	t.Rotation = fromBasis(right, newUp, back)
	return t
}

// fromBasis converts the rotation matrix with columns x, y, z to a quaternion.
func fromBasis(x, y, z r3.Vec) quat.Number {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	var q quat.Number
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = quat.Number{
			Real: 0.25 / s,
			Imag: (m21 - m12) * s,
			Jmag: (m02 - m20) * s,
			Kmag: (m10 - m01) * s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: 0.25 * s,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: 0.25 * s,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: 0.25 * s,
		}
	}
	return normalize(q)
}

func normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return Identity
	}
	return quat.Scale(1/n, q)
}

// EulerYXZ decomposes the rotation as Ry(yaw) * Rx(pitch) * Rz(roll).
func (t Transform) EulerYXZ() (yaw, pitch, roll float64) {
	w, x, y, z := t.Rotation.Real, t.Rotation.Imag, t.Rotation.Jmag, t.Rotation.Kmag

	m02 := 2 * (x*z + w*y)
	m12 := 2 * (y*z - w*x)
	m22 := 1 - 2*(x*x+y*y)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)

	pitch = math.Asin(math.Max(-1, math.Min(1, -m12)))
	yaw = math.Atan2(m02, m22)
	roll = math.Atan2(m10, m11)
	return yaw, pitch, roll
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
