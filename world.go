package main

import "fmt"

// world owns every piece of interpreter state. All mutation happens on
// the frame goroutine; the network adapter only ever writes into its
// message channel.
type world struct {
	rig     *CameraRig
	shapes  *shapeManager
	seq     seqState
	lastCmd CommandType

	// last-wins cursor position in screen percent; the implicit XY
	// source for selectXY.
	cursorX, cursorY float64

	pending []delayedAction
	frame   int

	// synthetic pointer state driven by click commands
	clickHeld      bool
	clickX, clickY float64

	accepted uint64
	rejected uint64
	dropped  uint64
}

type delayedAction struct {
	dueFrame int
	run      func()
}

func newWorld(scene Scene) *world {
	return &world{
		rig:     newCameraRig(Vec3{Z: gs.CameraStartZ}),
		shapes:  newShapeManager(scene),
		cursorX: 50,
		cursorY: 50,
	}
}

// tick is one frame of the interpreter: run actions that have come due,
// apply this frame's messages in arrival order, then advance camera
// smoothing exactly once with the frame's dt.
func (w *world) tick(dt float64, msgs []string) {
	w.frame++
	w.runDue()
	for _, m := range msgs {
		w.handleMessage(m)
	}
	w.rig.Step(dt)
}

// schedule queues fn to run at the start of the tick `frames` from now.
func (w *world) schedule(frames int, fn func()) {
	w.pending = append(w.pending, delayedAction{dueFrame: w.frame + frames, run: fn})
}

func (w *world) runDue() {
	kept := w.pending[:0]
	for _, a := range w.pending {
		if a.dueFrame <= w.frame {
			a.run()
		} else {
			kept = append(kept, a)
		}
	}
	w.pending = kept
}

func (w *world) handleMessage(raw string) {
	cmd, err := decodeCommand([]byte(raw))
	if err != nil {
		w.dropped++
		logDecodeError("%v", err)
		return
	}
	w.apply(cmd)
}

// apply validates cmd against the placement cycle and routes it to the
// lifecycle manager and camera rig. A rejected command leaves all state
// untouched.
func (w *world) apply(cmd Command) bool {
	if cmd.Type == CmdUnknown {
		logDebug("unknown command %q ignored", cmd.RawTag)
		return false
	}

	// A repeated insert with the shape still sitting at its spawn point
	// is the tracker stuttering, not a new intent.
	if cmd.Type == CmdInsert && w.lastCmd == CmdInsert {
		if s := w.shapes.active; s != nil && !s.moved() {
			logDebug("duplicate insert discarded")
			return false
		}
	}

	if !placementLegal(w.seq, cmd.Type) {
		w.rejected++
		logViolation("illegal %s in state %s", cmd.Type, w.seq)
		return false
	}

	switch cmd.Type {
	case CmdInsert:
		w.shapes.spawn(cmd.Shape, w.rig)
	case CmdSelectXY:
		x, y := cmd.X, cmd.Y
		if !cmd.HasXY {
			x, y = w.cursorX, w.cursorY
		}
		if !w.shapes.repositionXY(projectCameraPlane(w.rig, x, y, gs.PlaneDistance)) {
			return false
		}
	case CmdSelectZ:
		w.shapes.pushZ(cmd.Z, w.rig)
		if s := w.shapes.finalize(); s != nil {
			consoleMessage(fmt.Sprintf("placed %s %s (%d total)", s.Kind, s.ID, len(w.shapes.placed)))
		}
	case CmdCursor:
		w.cursorX, w.cursorY = cmd.X, cmd.Y
		switch w.seq {
		case seqAwaitXY:
			w.shapes.repositionXY(projectCameraPlane(w.rig, cmd.X, cmd.Y, gs.PlaneDistance))
		case seqAwaitZ:
			if d := signOf(cmd.Y); d != 0 {
				w.shapes.pushZ(float64(d)*gs.PushStep, w.rig)
			}
		}
	case CmdClick:
		x, y := cmd.X, cmd.Y
		w.pressPointer(x, y)
		w.schedule(1, func() { w.releasePointer(x, y) })
	case CmdMove:
		w.rig.Move(Vec3{cmd.X, cmd.Y, cmd.Z}.Scale(gs.MoveStep))
	case CmdStageRotate:
		w.rig.Rotate(cmd.X*gs.RotStep, cmd.Y*gs.RotStep)
	}

	w.seq = nextState(w.seq, cmd.Type)
	w.lastCmd = cmd.Type
	w.accepted++
	return true
}

// pressPointer and releasePointer are the two halves of a synthesized
// click, applied one frame apart.
func (w *world) pressPointer(x, y float64) {
	w.clickHeld = true
	w.clickX, w.clickY = x, y
	logDebug("pointer press at %.1f%%, %.1f%%", x, y)
}

func (w *world) releasePointer(x, y float64) {
	w.clickHeld = false
	logDebug("pointer release at %.1f%%, %.1f%%", x, y)
}

// dropBuffered counts messages discarded without being applied, e.g.
// remnants buffered across a connection loss.
func (w *world) dropBuffered(n int) {
	if n <= 0 {
		return
	}
	w.dropped += uint64(n)
	logDebug("dropped %d buffered messages while disconnected", n)
}
