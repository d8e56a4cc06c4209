package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CommandType discriminates the gesture protocol commands.
type CommandType string

const (
	CmdInsert      CommandType = "insert"
	CmdSelectXY    CommandType = "selectXY"
	CmdSelectZ     CommandType = "selectZ"
	CmdCursor      CommandType = "cursor"
	CmdClick       CommandType = "click"
	CmdMove        CommandType = "move"
	CmdStageRotate CommandType = "stagerotate"
	CmdUnknown     CommandType = "unknown"
)

// Command is one decoded tracker message. Which fields are meaningful
// depends on Type; the rest stay at their zero values.
type Command struct {
	Type  CommandType
	Shape string  // insert
	X     float64 // selectXY/cursor/click pct, move/stagerotate delta
	Y     float64
	Z     float64 // selectZ/move
	// HasXY reports whether selectXY carried explicit coordinates rather
	// than relying on the last cursor position.
	HasXY  bool
	RawTag string // original tag for unknown commands
}

// numValue accepts a JSON number or a string-encoded number; the tracker
// quotes its floats ("x": "42.17"). A missing field decodes to zero.
type numValue float64

func (n *numValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric field %q", s)
	}
	*n = numValue(f)
	return nil
}

func (n *numValue) float() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

type wireMessage struct {
	Command string    `json:"command"`
	Shape   string    `json:"shape"`
	X       *numValue `json:"x"`
	Y       *numValue `json:"y"`
	Z       *numValue `json:"z"`
}

// decodeCommand parses a single text frame from the tracker. Unparsable
// input is an error; a well-formed message with an unrecognized command
// tag is not, it decodes to CmdUnknown so the caller can skip it quietly.
func decodeCommand(data []byte) (Command, error) {
	var w wireMessage
	if err := json.Unmarshal(data, &w); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	if w.Command == "" {
		return Command{}, fmt.Errorf("decode command: missing command tag")
	}

	cmd := Command{X: w.X.float(), Y: w.Y.float(), Z: w.Z.float()}
	switch w.Command {
	case "insert":
		cmd.Type = CmdInsert
		cmd.Shape = w.Shape
	case "selectXY":
		cmd.Type = CmdSelectXY
		cmd.HasXY = w.X != nil || w.Y != nil
	case "selectZ":
		cmd.Type = CmdSelectZ
	case "cursor":
		cmd.Type = CmdCursor
	case "click":
		cmd.Type = CmdClick
	case "move":
		cmd.Type = CmdMove
	case "stagerotate":
		cmd.Type = CmdStageRotate
	default:
		cmd = Command{Type: CmdUnknown, RawTag: w.Command}
	}
	return cmd, nil
}
