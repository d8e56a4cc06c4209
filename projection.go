package main

import "math"

const (
	projEpsilon = 1e-9

	// vertical field of view and aspect of the pinhole model used for
	// cursor rays; matches the diagnostic window.
	viewFOV    = math.Pi / 3
	viewAspect = 16.0 / 9.0
)

// signOf collapses a 0-100 cursor percentage into a discrete direction.
// The middle band is a dead zone so tracker jitter does not produce
// drift; the thresholds themselves count as inside it.
func signOf(pct float64) int {
	switch {
	case pct < 25:
		return -1
	case pct > 75:
		return 1
	default:
		return 0
	}
}

// viewRay returns the eye position and direction of the ray through the
// screen point (xPct, yPct), both in percent, using the rig's current
// transform at call time.
func viewRay(rig *CameraRig, xPct, yPct float64) (origin, dir Vec3) {
	fwd, right, up := rig.Basis()
	h := math.Tan(viewFOV / 2)
	nx := (xPct/100 - 0.5) * 2 * h * viewAspect
	ny := (0.5 - yPct/100) * 2 * h
	dir = fwd.Add(right.Scale(nx)).Add(up.Scale(ny)).Normalize()
	return rig.Position(), dir
}

// intersectPlane returns where the ray origin+t·dir crosses the plane
// normal·p = d, or false when the ray runs parallel to it.
func intersectPlane(origin, dir, normal Vec3, d float64) (Vec3, bool) {
	denom := normal.Dot(dir)
	if math.Abs(denom) < projEpsilon {
		return Vec3{}, false
	}
	t := (d - normal.Dot(origin)) / denom
	return origin.Add(dir.Scale(t)), true
}

// projectFixedPlane intersects the view ray through (xPct, yPct) with the
// world plane z = offset. A parallel ray yields the zero vector.
func projectFixedPlane(rig *CameraRig, xPct, yPct, offset float64) Vec3 {
	origin, dir := viewRay(rig, xPct, yPct)
	p, ok := intersectPlane(origin, dir, Vec3{Z: 1}, offset)
	if !ok {
		logError("degenerate projection: view ray parallel to z=%.2f plane", offset)
		return Vec3{}
	}
	return p
}

// projectCameraPlane intersects the view ray with the plane facing the
// camera at zDistance in front of the eye, so a dragged shape keeps a
// constant perceived depth even while the camera is still smoothing.
func projectCameraPlane(rig *CameraRig, xPct, yPct, zDistance float64) Vec3 {
	fwd, _, _ := rig.Basis()
	origin, dir := viewRay(rig, xPct, yPct)
	anchor := origin.Add(fwd.Scale(zDistance))
	p, ok := intersectPlane(origin, dir, fwd, fwd.Dot(anchor))
	if !ok {
		logError("degenerate projection: view ray parallel to camera plane")
		return Vec3{}
	}
	return p
}
