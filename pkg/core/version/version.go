// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package version

import "runtime/debug"

// Version constants for all smallstring components
const (
	// Module version
	Module = "0.3.0"

	// Component versions
	SmallStr   = "0.3.0"
	BufPool    = "0.2.0"
	Foundation = "0.2.0"
	CLI        = "0.3.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "smallstr":
		return SmallStr
	case "bufpool":
		return BufPool
	case "foundation":
		return Foundation
	case "sso", "cli":
		return CLI
	default:
		return Module
	}
}

// Commit returns the VCS revision embedded by the Go toolchain, or "unknown"
func Commit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}
