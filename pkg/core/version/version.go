// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     version
// Description: Central version information for the CLI and the TUI
// Author:      Mike Stoffels
// Created:     2025-12-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants for mCalc components
const (
	// Application version
	App = "1.0.0"

	// Component versions
	Calculator = "1.0.0"
	EasterEgg  = "1.0.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/mCalc/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "calculator":
		return Calculator
	case "easteregg":
		return EasterEgg
	default:
		return App
	}
}

// Components lists the component names known to ComponentVersion
var Components = []string{"calculator", "easteregg"}

// Info returns the multi-line version banner printed by "mcalc version"
func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mCalc v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		App, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	b.WriteString("Komponenten:\n")
	for _, name := range Components {
		fmt.Fprintf(&b, "  %-11s %s\n", name+":", ComponentVersion(name))
	}
	return b.String()
}
