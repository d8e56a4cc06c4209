package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

type Settings struct {
	ServerURL     string  `json:"serverUrl"`
	PosSmoothRate float64 `json:"posSmoothRate"`
	RotSmoothRate float64 `json:"rotSmoothRate"`
	PlaneOffset   float64 `json:"planeOffset"`
	PlaneDistance float64 `json:"planeDistance"`
	MoveStep      float64 `json:"moveStep"`
	RotStep       float64 `json:"rotStep"`
	PushStep      float64 `json:"pushStep"`
	CameraStartZ  float64 `json:"cameraStartZ"`
	ShowFPS       bool    `json:"showFps"`
}

var gs = defaultSettings()
var settingsDirty bool

func defaultSettings() Settings {
	return Settings{
		ServerURL:     "ws://localhost:8765",
		PosSmoothRate: 4.0,
		RotSmoothRate: 4.0,
		PlaneOffset:   0.5,
		PlaneDistance: 6.0,
		MoveStep:      0.25,
		RotStep:       0.0175, // about one degree per unit
		PushStep:      0.25,
		CameraStartZ:  10,
		ShowFPS:       true,
	}
}

func loadSettings() bool {
	path := filepath.Join(baseDir, "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		settingsDirty = true
		return false
	}
	s := defaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("load settings: %v", err)
		return false
	}
	if s.PosSmoothRate <= 0 {
		s.PosSmoothRate = defaultSettings().PosSmoothRate
	}
	if s.RotSmoothRate <= 0 {
		s.RotSmoothRate = defaultSettings().RotSmoothRate
	}
	gs = s
	return true
}

func saveSettings() {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		log.Printf("save settings: %v", err)
		return
	}
	path := filepath.Join(baseDir, "settings.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("save settings: %v", err)
	}
}
