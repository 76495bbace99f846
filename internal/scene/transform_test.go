package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// assertVec3 compares per component with an absolute tolerance; a rotation
// by 90° leaves residues around 1e-8 where the exact answer is 0.
func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "got %v want %v", got, want)
}

func TestMatricesArePeriodic(t *testing.T) {
	for _, a := range []Angle{0, 1, 5, 123, 1800, 3599} {
		b := a + FullTurn
		assert.Equal(t, SceneRotation(a), SceneRotation(b), "angle %v", a)
		assert.Equal(t, CubeA.Local(a), CubeA.Local(b), "angle %v", a)
		assert.Equal(t, CubeB.Local(a), CubeB.Local(b+FullTurn), "angle %v", a)

		s1 := State{CubeA: a, CubeB: a, Scene: a}
		s2 := State{CubeA: b, CubeB: b - 2*FullTurn, Scene: b}
		assert.Equal(t, Compose(s1, 1280, 720), Compose(s2, 1280, 720))
	}
}

func TestModelIsSceneTimesLocal(t *testing.T) {
	scene := SceneRotation(300)
	angle := Angle(450)

	local := CubeA.Local(angle)
	model := CubeA.Model(scene, angle)

	assert.Equal(t, scene.Mul4(local), model)

	// The scene rotation moves the anchor itself; local * scene would not.
	wantAnchor := scene.Mul4x1(CubeA.Anchor.Vec4(1)).Vec3()
	assertVec3(t, wantAnchor, model.Col(3).Vec3())
	assert.Greater(t, model.Col(3).Vec3().Sub(local.Mul4(scene).Col(3).Vec3()).Len(), float32(0.1))
}

func TestLocalTransformOrder(t *testing.T) {
	// translate * rotate * scale: the corner (0.5, 0, 0) is scaled to 0.25,
	// spun 90° about +Y to (0, 0, -0.25), then moved to the anchor.
	m := CubeA.Local(90 * Degree)
	got := m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3()
	want := CubeA.Anchor.Add(mgl32.Vec3{0, 0, -0.25})
	assertVec3(t, want, got)
}

func TestSceneRotationAboutY(t *testing.T) {
	m := SceneRotation(90 * Degree)
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	assertVec3(t, mgl32.Vec3{0, 0, -1}, got)

	assert.Equal(t, mgl32.Ident4(), SceneRotation(0))
}

func TestCubeBSpinsAboutZ(t *testing.T) {
	m := CubeB.Local(90 * Degree)
	got := m.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1}).Vec3()
	want := CubeB.Anchor.Add(mgl32.Vec3{0, 0.25, 0})
	assertVec3(t, want, got)
}

func TestViewAndProjection(t *testing.T) {
	assert.Equal(t, mgl32.Translate3D(0, 0, -5), View())

	want := mgl32.Perspective(mgl32.DegToRad(45), 1280.0/720.0, 0.1, 100)
	assert.Equal(t, want, Projection(1280, 720))
}

func TestComposeUsesState(t *testing.T) {
	s := Advance(State{}, 100)
	f := Compose(s, 1280, 720)
	assert.Equal(t, SceneRotation(s.Scene), f.Scene)
	assert.Equal(t, CubeA.Model(f.Scene, s.CubeA), f.ModelA)
	assert.Equal(t, CubeB.Model(f.Scene, s.CubeB), f.ModelB)
}

func BenchmarkCompose(b *testing.B) {
	s := State{}
	for i := 0; i < b.N; i++ {
		s = Step(s)
		_ = Compose(s, 1280, 720)
	}
}
