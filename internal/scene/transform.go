package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera and projection parameters.
const (
	CameraDistance = 5.0
	FieldOfView    = 45.0 // degrees
	NearPlane      = 0.1
	FarPlane       = 100.0
	CubeScale      = 0.5
)

// Cube is one drawn cube: where it sits, which axis it spins about, and its
// flat color.
type Cube struct {
	Anchor mgl32.Vec3
	Axis   mgl32.Vec3
	Color  mgl32.Vec3
}

var (
	// CubeA spins about +Y, drawn green.
	CubeA = Cube{Anchor: mgl32.Vec3{-1.5, 1, 0}, Axis: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{0, 1, 0}}
	// CubeB spins about +Z, drawn blue.
	CubeB = Cube{Anchor: mgl32.Vec3{1.5, -1, 0}, Axis: mgl32.Vec3{0, 0, 1}, Color: mgl32.Vec3{0, 0, 1}}

	// SceneAxis is the axis of the whole-scene rotation.
	SceneAxis = mgl32.Vec3{0, 1, 0}
)

// View is the fixed camera, pulled back along -Z.
func View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -CameraDistance)
}

// Projection is a perspective projection for a width×height viewport.
func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(width)/float32(height), NearPlane, FarPlane)
}

// SceneRotation rotates the whole scene about SceneAxis.
func SceneRotation(a Angle) mgl32.Mat4 {
	return mgl32.HomogRotate3D(a.Radians(), SceneAxis)
}

// Local is translate(anchor) * rotate(angle, axis) * scale(CubeScale).
func (c Cube) Local(a Angle) mgl32.Mat4 {
	return mgl32.Translate3D(c.Anchor.X(), c.Anchor.Y(), c.Anchor.Z()).
		Mul4(mgl32.HomogRotate3D(a.Radians(), c.Axis)).
		Mul4(mgl32.Scale3D(CubeScale, CubeScale, CubeScale))
}

// Model places the cube in world space: the scene rotation is applied after
// the cube's local transform (scene * local).
func (c Cube) Model(scene mgl32.Mat4, a Angle) mgl32.Mat4 {
	return scene.Mul4(c.Local(a))
}

// Frame holds every matrix needed to draw one frame.
type Frame struct {
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Scene  mgl32.Mat4
	ModelA mgl32.Mat4
	ModelB mgl32.Mat4
}

// Compose builds the matrices for state s on a width×height viewport.
func Compose(s State, width, height int) Frame {
	sc := SceneRotation(s.Scene)
	return Frame{
		View:   View(),
		Proj:   Projection(width, height),
		Scene:  sc,
		ModelA: CubeA.Model(sc, s.CubeA),
		ModelB: CubeB.Model(sc, s.CubeB),
	}
}
