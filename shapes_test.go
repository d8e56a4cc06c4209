package main

import "testing"

// recordingScene counts attach/detach calls for lifecycle tests.
type recordingScene struct {
	attached []*Shape
}

func (s *recordingScene) Attach(sh *Shape) { s.attached = append(s.attached, sh) }

func (s *recordingScene) Detach(sh *Shape) {
	for i, n := range s.attached {
		if n == sh {
			s.attached = append(s.attached[:i], s.attached[i+1:]...)
			return
		}
	}
}

func TestSpawnAttachesAboveBehindCamera(t *testing.T) {
	scene := &recordingScene{}
	m := newShapeManager(scene)
	rig := newCameraRig(Vec3{Z: 10})
	s := m.spawn("sphere", rig)
	if len(scene.attached) != 1 || scene.attached[0] != s {
		t.Fatalf("scene %+v", scene.attached)
	}
	// forward is -Z, so behind is +Z
	want := Vec3{0, spawnUp, 10 + spawnBack}
	if !vecNear(s.Pos, want) {
		t.Fatalf("spawned at %+v, want %+v", s.Pos, want)
	}
	if s.moved() {
		t.Fatal("fresh shape reports moved")
	}
}

func TestSpawnDetachesAbandonedShape(t *testing.T) {
	scene := &recordingScene{}
	m := newShapeManager(scene)
	rig := newCameraRig(Vec3{})
	first := m.spawn("cube", rig)
	second := m.spawn("sphere", rig)
	if len(scene.attached) != 1 || scene.attached[0] != second {
		t.Fatalf("scene %+v", scene.attached)
	}
	if m.active != second || first == second {
		t.Fatal("abandoned shape still active")
	}
}

func TestPushZAlongForward(t *testing.T) {
	scene := &recordingScene{}
	m := newShapeManager(scene)
	rig := newCameraRig(Vec3{})
	s := m.spawn("sphere", rig)
	start := s.Pos
	if !m.pushZ(2, rig) {
		t.Fatal("push failed")
	}
	// forward (0,0,-1): pushing away lowers Z by 2
	if !vecNear(s.Pos, start.Add(Vec3{Z: -2})) {
		t.Fatalf("pos %+v", s.Pos)
	}
	if !s.moved() {
		t.Fatal("pushed shape should report moved")
	}
}

func TestFinalizeAppendsInOrder(t *testing.T) {
	scene := &recordingScene{}
	m := newShapeManager(scene)
	rig := newCameraRig(Vec3{})
	a := m.spawn("sphere", rig)
	if m.finalize() != a {
		t.Fatal("finalize returned wrong shape")
	}
	b := m.spawn("cube", rig)
	m.finalize()
	if len(m.placed) != 2 || m.placed[0] != a || m.placed[1] != b {
		t.Fatalf("placed %+v", m.placed)
	}
	if len(scene.attached) != 2 {
		t.Fatalf("finalized shapes must stay attached, scene %+v", scene.attached)
	}
	if a.ID == b.ID {
		t.Fatal("duplicate shape IDs")
	}
}

func TestLifecycleNoActiveShape(t *testing.T) {
	m := newShapeManager(&recordingScene{})
	rig := newCameraRig(Vec3{})
	if m.repositionXY(Vec3{X: 1}) {
		t.Fatal("reposition succeeded with no active shape")
	}
	if m.pushZ(1, rig) {
		t.Fatal("push succeeded with no active shape")
	}
	if m.finalize() != nil {
		t.Fatal("finalize returned a shape with none active")
	}
	if len(m.placed) != 0 {
		t.Fatalf("placed %+v", m.placed)
	}
}
