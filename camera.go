package main

// CameraRig separates where the camera is commanded to go from where it
// currently is. Move and Rotate only ever touch the target transform;
// the current transform converges toward it once per frame in Step.
type CameraRig struct {
	pos          Vec3
	orient       Quat
	targetPos    Vec3
	targetOrient Quat
}

// newCameraRig starts with current equal to target so the first frame
// does not snap.
func newCameraRig(start Vec3) *CameraRig {
	return &CameraRig{
		pos:          start,
		orient:       quatIdentity(),
		targetPos:    start,
		targetOrient: quatIdentity(),
	}
}

func (r *CameraRig) Position() Vec3 { return r.pos }
func (r *CameraRig) Target() Vec3   { return r.targetPos }

// Basis returns the forward, right and up axes of the current transform.
func (r *CameraRig) Basis() (fwd, right, up Vec3) {
	fwd = r.orient.Rotate(Vec3{Z: -1})
	right = r.orient.Rotate(Vec3{X: 1})
	up = r.orient.Rotate(Vec3{Y: 1})
	return fwd, right, up
}

// Move accumulates a world-axis translation into the target position.
func (r *CameraRig) Move(d Vec3) {
	r.targetPos = r.targetPos.Add(d)
}

// Rotate accumulates yaw about world up and pitch about the target's
// right axis into the target orientation.
func (r *CameraRig) Rotate(yaw, pitch float64) {
	r.targetOrient = quatAxisAngle(Vec3{Y: 1}, yaw).Mul(r.targetOrient)
	right := r.targetOrient.Rotate(Vec3{X: 1})
	r.targetOrient = quatAxisAngle(right, pitch).Mul(r.targetOrient).Normalize()
}

// Step advances the current transform toward the target. The clamp
// bounds the per-frame blend so a long frame cannot overshoot.
func (r *CameraRig) Step(dt float64) {
	r.pos = lerpVec(r.pos, r.targetPos, clamp01(gs.PosSmoothRate*dt))
	r.orient = slerpQuat(r.orient, r.targetOrient, clamp01(gs.RotSmoothRate*dt))
}
