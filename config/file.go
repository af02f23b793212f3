package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Controls ControlsConfig `yaml:"controls"`
	Build    BuildConfig    `yaml:"build"`
	Camera   CameraConfig   `yaml:"camera"`
	Network  NetworkConfig  `yaml:"network"`
}

// CurrentTuning returns the tuning values currently in effect.
func CurrentTuning() Tuning {
	return Tuning{
		Controls: Controls,
		Build:    Build,
		Camera:   Camera,
		Network:  Network,
	}
}

// ParseTuning overlays the YAML document in data onto base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate rejects values the control loop cannot work with.
func (t Tuning) Validate() error {
	switch {
	case t.Controls.Sensitivity <= 0:
		return fmt.Errorf("controls.sensitivity must be positive, got %v", t.Controls.Sensitivity)
	case t.Controls.MoveSpeed < 0:
		return fmt.Errorf("controls.moveSpeed must not be negative, got %v", t.Controls.MoveSpeed)
	case t.Build.StepLength <= 0:
		return fmt.Errorf("build.stepLength must be positive, got %v", t.Build.StepLength)
	case t.Build.MaxSteps < 1:
		return fmt.Errorf("build.maxSteps must be at least 1, got %d", t.Build.MaxSteps)
	case t.Network.SendQueue < 1:
		return fmt.Errorf("network.sendQueue must be at least 1, got %d", t.Network.SendQueue)
	case t.Network.ReadLimit < 1024:
		return fmt.Errorf("network.readLimit must be at least 1024, got %d", t.Network.ReadLimit)
	}
	return nil
}

// Apply makes t the tuning in effect.
func (t Tuning) Apply() {
	Controls = t.Controls
	Build = t.Build
	Camera = t.Camera
	Network = t.Network
}

// LoadFile reads a YAML tuning file and applies it. On error the current
// configuration is left untouched.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	t.Apply()
	return nil
}
