package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Workbench", Workbench},
		{"Basics", Basics},
		{"Files", Files},
		{"Network", Network},
		{"Storage", Storage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestGroupVersion(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		expected string
	}{
		{"basics group", "basics", Basics},
		{"files group", "files", Files},
		{"network group", "network", Network},
		{"storage group", "storage", Storage},
		{"unknown group", "unknown", Workbench},
		{"empty group", "", Workbench},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GroupVersion(tt.group)
			if result != tt.expected {
				t.Errorf("GroupVersion(%q) = %q, want %q", tt.group, result, tt.expected)
			}
		})
	}
}
