// ============================================================================
// meinLERNWERK (mLW) - Go Lernwerkstatt
// ============================================================================
//
// Package:     version
// Description: Central version management for the workbench and exercises
// Author:      Mike Stoffels with Claude
// Created:     2026-08-16
// License:     MIT
// ============================================================================

package version

// Version constants for the mLW workbench
const (
	// Workbench version
	Workbench = "1.0.0"

	// Exercise group versions
	Basics  = "1.0.0" // person, seqs, wrap, mathx
	Files   = "1.0.0" // profile, table
	Network = "1.0.0" // jokes, scrape
	Storage = "1.0.0" // notes
)

// GroupVersion returns the version for a given exercise group
func GroupVersion(name string) string {
	switch name {
	case "basics":
		return Basics
	case "files":
		return Files
	case "network":
		return Network
	case "storage":
		return Storage
	default:
		return Workbench
	}
}
