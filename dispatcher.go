package main

// seqState tracks progress through a shape placement cycle.
type seqState int

const (
	seqIdle seqState = iota
	seqAwaitXY
	seqAwaitZ
)

func (s seqState) String() string {
	switch s {
	case seqIdle:
		return "Idle"
	case seqAwaitXY:
		return "AwaitingXY"
	case seqAwaitZ:
		return "AwaitingZ"
	}
	return "invalid"
}

// placementLegal reports whether cmd may be accepted with the cycle in
// state s. Continuous commands (cursor, click, move, stagerotate) never
// participate in the cycle and are always legal.
//
// insert starts a cycle from Idle, or restarts one mid-placement after
// the XY pick; selectXY needs a freshly inserted shape or an earlier
// pick to refine; selectZ finalizes from either mid-cycle state.
func placementLegal(s seqState, t CommandType) bool {
	switch t {
	case CmdInsert:
		return s == seqIdle || s == seqAwaitZ
	case CmdSelectXY:
		return s == seqAwaitXY || s == seqAwaitZ
	case CmdSelectZ:
		return s == seqAwaitXY || s == seqAwaitZ
	default:
		return true
	}
}

// nextState is the transition taken after cmd is applied successfully.
func nextState(s seqState, t CommandType) seqState {
	switch t {
	case CmdInsert:
		return seqAwaitXY
	case CmdSelectXY:
		return seqAwaitZ
	case CmdSelectZ:
		return seqIdle
	}
	return s
}
