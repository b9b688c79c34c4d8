// Package config provides configuration management and state persistence
// for ringspin.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const currentStateVersion = 1

// AppState represents the application's persistent state.
type AppState struct {
	Version int          `json:"version"`
	Spinner SpinnerState `json:"spinner"`
}

func defaultAppState() AppState {
	return AppState{
		Version: currentStateVersion,
		Spinner: DefaultSpinnerState(),
	}
}

func (s *AppState) normalize() {
	if s == nil {
		return
	}
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
	s.Spinner.normalize()
}

// GetConfigDir returns the path to the .ringspin directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".ringspin"), nil
}

// EnsureConfigDir creates the .ringspin directory if it doesn't exist
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// getStateFilePath returns the path to the state.json file
func getStateFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LoadState loads the application state from disk. A missing, empty or
// unreadable file yields the defaults.
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	state := defaultAppState()

	// If file doesn't exist, return default state
	if _, err := os.Stat(stateFile); os.IsNotExist(err) {
		return &state, nil
	} else if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		state.normalize()
		return &state, nil
	}

	if err := json.Unmarshal(data, &state); err != nil {
		state = defaultAppState()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// SaveState saves the application state to disk
func SaveState(state *AppState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}
	if err := state.Spinner.Validate(); err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return err
	}

	state.normalize()

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	return os.WriteFile(stateFile, data, 0644)
}
