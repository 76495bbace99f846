package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Angle is a rotation in tenths of a degree. Keeping angles integral makes
// wrapping exact: an angle and the same angle plus a full turn are equal
// after Wrap and therefore produce identical matrices.
type Angle int32

const (
	Tenth    Angle = 1
	Degree   Angle = 10
	FullTurn Angle = 360 * Degree
)

// Per-update increments.
const (
	CubeStep  = 5 * Tenth // 0.5°
	SceneStep = 1 * Tenth // 0.1°
)

// Wrap returns a in [0, FullTurn).
func (a Angle) Wrap() Angle {
	a %= FullTurn
	if a < 0 {
		a += FullTurn
	}
	return a
}

// Degrees returns the wrapped angle in degrees.
func (a Angle) Degrees() float32 { return float32(a.Wrap()) / float32(Degree) }

// Radians returns the wrapped angle in radians.
func (a Angle) Radians() float32 { return mgl32.DegToRad(a.Degrees()) }

func (a Angle) String() string { return fmt.Sprintf("%.1f°", a.Degrees()) }

// State is the rotation state advanced once per open update gate.
type State struct {
	CubeA Angle // first cube's spin about its own axis
	CubeB Angle // second cube's spin about its own axis
	Scene Angle // whole-scene spin about +Y
}

// Step returns s advanced by one update.
func Step(s State) State {
	return State{
		CubeA: (s.CubeA + CubeStep).Wrap(),
		CubeB: (s.CubeB + CubeStep).Wrap(),
		Scene: (s.Scene + SceneStep).Wrap(),
	}
}

// Advance returns s advanced by n updates.
func Advance(s State, n int) State {
	steps := Angle(n % int(FullTurn))
	return State{
		CubeA: (s.CubeA + steps*CubeStep).Wrap(),
		CubeB: (s.CubeB + steps*CubeStep).Wrap(),
		Scene: (s.Scene + steps*SceneStep).Wrap(),
	}
}
