package main

import (
	"math"
	"testing"
)

func TestSignOf(t *testing.T) {
	cases := []struct {
		pct  float64
		want int
	}{
		{0, -1},
		{24.9, -1},
		{25, 0},
		{50, 0},
		{75, 0},
		{75.1, 1},
		{100, 1},
	}
	for _, c := range cases {
		if got := signOf(c.pct); got != c.want {
			t.Errorf("signOf(%v) = %d, want %d", c.pct, got, c.want)
		}
	}
}

func TestProjectFixedPlaneCenterRay(t *testing.T) {
	rig := newCameraRig(Vec3{Z: 10})
	// center of the screen looks straight down -Z and crosses z=0.5 in
	// front of the eye
	got := projectFixedPlane(rig, 50, 50, 0.5)
	if !vecNear(got, Vec3{0, 0, 0.5}) {
		t.Fatalf("got %+v", got)
	}
}

func TestProjectFixedPlaneParallelRay(t *testing.T) {
	rig := newCameraRig(Vec3{Z: 10})
	// pitch the camera straight down so the center ray lies in the plane
	// direction and never crosses z = const
	rig.Rotate(0, -math.Pi/2)
	rig.Step(1e9) // snap current to target
	if got := projectFixedPlane(rig, 50, 50, 0.5); got != (Vec3{}) {
		t.Fatalf("expected zero-vector sentinel, got %+v", got)
	}
}

func TestProjectCameraPlaneDepth(t *testing.T) {
	rig := newCameraRig(Vec3{X: 3, Y: -2, Z: 7})
	rig.Rotate(0.7, -0.3)
	rig.Step(1e9)
	fwd, _, _ := rig.Basis()

	for _, pt := range [][2]float64{{50, 50}, {10, 90}, {95, 5}} {
		p := projectCameraPlane(rig, pt[0], pt[1], 6)
		depth := p.Sub(rig.Position()).Dot(fwd)
		if math.Abs(depth-6) > 1e-9 {
			t.Fatalf("point %v: depth %v, want 6", pt, depth)
		}
	}
}

func TestViewRayCenterIsForward(t *testing.T) {
	rig := newCameraRig(Vec3{Z: 10})
	origin, dir := viewRay(rig, 50, 50)
	if origin != rig.Position() {
		t.Fatalf("origin %+v", origin)
	}
	if !vecNear(dir, Vec3{Z: -1}) {
		t.Fatalf("dir %+v", dir)
	}
}
