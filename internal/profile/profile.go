// Package profile implements the JSON round-trip exercise: a four-field
// user record written to disk and read back unchanged.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// Profile is the serialized user record
type Profile struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Level    int      `json:"level"`
	Projects []string `json:"projects"`
}

// Sample returns the fixed demonstration record
func Sample() Profile {
	return Profile{
		Username: "gopherin",
		Email:    "gopherin@example.org",
		Level:    3,
		Projects: []string{"mDW", "mLW"},
	}
}

// Save writes the profile as indented JSON, creating parent directories
func (p Profile) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// Load reads a profile back from disk
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return &p, nil
}

// Equal reports whether two profiles match in all four fields
func (p Profile) Equal(other Profile) bool {
	return p.Username == other.Username &&
		p.Email == other.Email &&
		p.Level == other.Level &&
		reflect.DeepEqual(p.Projects, other.Projects)
}
