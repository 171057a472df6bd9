package preview

import (
	gomath "math"

	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/math"
	"github.com/MarkYing2014/isrishuangdi-spring-platform-sub007/pkg/sweep"
)

// OrbitCamera orbits around a center point. The spring axis is +Z, so
// the camera uses Z-up spherical coordinates.
type OrbitCamera struct {
	Center math.Vec3

	Distance float32 // distance from center
	Pitch    float32 // elevation above the XY plane, radians
	Yaw      float32 // rotation around +Z, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        100.0,
		Pitch:           0.5,
		Yaw:             0.8,
		MinDistance:     5.0,
		MaxDistance:     2000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cosP := float32(gomath.Cos(float64(c.Pitch)))
	x := c.Distance * cosP * float32(gomath.Cos(float64(c.Yaw)))
	y := c.Distance * cosP * float32(gomath.Sin(float64(c.Yaw)))
	z := c.Distance * float32(gomath.Sin(float64(c.Pitch)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 0, Z: 1}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToBounds adjusts the camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(b sweep.Bounds) {
	c.Center = math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}

	maxSize := b.Max[0] - b.Min[0]
	if s := b.Max[1] - b.Min[1]; s > maxSize {
		maxSize = s
	}
	if s := b.Max[2] - b.Min[2]; s > maxSize {
		maxSize = s
	}

	c.Distance = maxSize * 2.2
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}

	c.Pitch = 0.5
	c.Yaw = 0.8
}
