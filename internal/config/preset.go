package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadPreset reads a JSON settings file and returns the decoded snapshot.
// Fields missing from the file keep their defaults; numeric fields are
// clamped to their slider ranges; malformed enums or hex colors abort with
// an error.
func LoadPreset(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read preset: %w", err)
	}
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	s.Clamp()
	return s, nil
}
