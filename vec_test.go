package main

import (
	"math"
	"testing"
)

const vecEps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < vecEps && math.Abs(a.Y-b.Y) < vecEps && math.Abs(a.Z-b.Z) < vecEps
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("got %+v", got)
	}
}

func TestLerpVec(t *testing.T) {
	got := lerpVec(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5)
	if !vecNear(got, Vec3{1, 2, 3}) {
		t.Fatalf("got %+v", got)
	}
}

func TestQuatRotateIdentity(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := quatIdentity().Rotate(v); !vecNear(got, v) {
		t.Fatalf("got %+v", got)
	}
}

func TestQuatAxisAngle(t *testing.T) {
	// 90 degrees about +Y carries -Z to -X
	q := quatAxisAngle(Vec3{Y: 1}, math.Pi/2)
	got := q.Rotate(Vec3{Z: -1})
	if !vecNear(got, Vec3{X: -1}) {
		t.Fatalf("got %+v", got)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := quatIdentity()
	b := quatAxisAngle(Vec3{Y: 1}, math.Pi/2)
	if got := slerpQuat(a, b, 0); math.Abs(got.W-a.W) > vecEps || math.Abs(got.Y-a.Y) > vecEps {
		t.Fatalf("t=0: got %+v", got)
	}
	if got := slerpQuat(a, b, 1); math.Abs(got.W-b.W) > vecEps || math.Abs(got.Y-b.Y) > vecEps {
		t.Fatalf("t=1: got %+v", got)
	}
}

func TestSlerpHalfway(t *testing.T) {
	a := quatIdentity()
	b := quatAxisAngle(Vec3{Y: 1}, math.Pi/2)
	mid := slerpQuat(a, b, 0.5)
	want := quatAxisAngle(Vec3{Y: 1}, math.Pi/4)
	if math.Abs(mid.Y-want.Y) > 1e-6 || math.Abs(mid.W-want.W) > 1e-6 {
		t.Fatalf("got %+v, want %+v", mid, want)
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.25) != 0.25 {
		t.Fatal("clamp01 out of range")
	}
}
