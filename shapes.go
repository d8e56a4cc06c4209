package main

import "github.com/segmentio/ksuid"

const (
	spawnBack = 2.0 // behind the eye, along -forward
	spawnUp   = 1.0
)

// Scene is what the lifecycle manager needs from the host renderer: it
// only ever attaches and detaches shape nodes.
type Scene interface {
	Attach(s *Shape)
	Detach(s *Shape)
}

// Shape is one inserted scene object.
type Shape struct {
	ID    ksuid.KSUID
	Kind  string
	Pos   Vec3
	spawn Vec3
}

// moved reports whether the shape has left its spawn point.
func (s *Shape) moved() bool { return s.Pos != s.spawn }

// shapeManager owns the single in-progress shape and the ordered list of
// finalized ones. Finalized shapes are never removed here.
type shapeManager struct {
	scene  Scene
	active *Shape
	placed []*Shape
}

func newShapeManager(scene Scene) *shapeManager {
	return &shapeManager{scene: scene}
}

// spawn creates a new active shape at a fixed offset above and behind
// the camera eye. An abandoned in-progress shape is detached first so a
// mid-cycle insert cannot leak scene nodes.
func (m *shapeManager) spawn(kind string, rig *CameraRig) *Shape {
	if m.active != nil {
		m.scene.Detach(m.active)
	}
	fwd, _, up := rig.Basis()
	pos := rig.Position().Sub(fwd.Scale(spawnBack)).Add(up.Scale(spawnUp))
	s := &Shape{ID: ksuid.New(), Kind: kind, Pos: pos, spawn: pos}
	m.scene.Attach(s)
	m.active = s
	return s
}

// repositionXY moves the active shape to a projected world point.
func (m *shapeManager) repositionXY(p Vec3) bool {
	if m.active == nil {
		logDebug("reposition with no active shape")
		return false
	}
	m.active.Pos = p
	return true
}

// pushZ moves the active shape along the camera's current forward axis;
// positive delta pushes away from the camera.
func (m *shapeManager) pushZ(delta float64, rig *CameraRig) bool {
	if m.active == nil {
		logDebug("push with no active shape")
		return false
	}
	fwd, _, _ := rig.Basis()
	m.active.Pos = m.active.Pos.Add(fwd.Scale(delta))
	return true
}

// finalize appends the active shape to the placed list and clears it.
// The shape stays attached to the scene. With no active shape this is a
// no-op.
func (m *shapeManager) finalize() *Shape {
	if m.active == nil {
		logDebug("finalize with no active shape")
		return nil
	}
	s := m.active
	m.placed = append(m.placed, s)
	m.active = nil
	return s
}
