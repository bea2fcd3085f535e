package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"App", App},
		{"Calculator", Calculator},
		{"EasterEgg", EasterEgg},
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

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"calculator", Calculator},
		{"easteregg", EasterEgg},
		{"unknown", App},
		{"", App},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.name); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "mCalc v"+App) {
		t.Errorf("Info() = %q, want prefix %q", info, "mCalc v"+App)
	}
	if !strings.Contains(info, "Git Commit: "+GitCommit) {
		t.Errorf("Info() misses the git commit: %q", info)
	}
	for _, line := range []string{
		"  calculator: " + Calculator,
		"  easteregg:  " + EasterEgg,
	} {
		if !strings.Contains(info, line+"\n") {
			t.Errorf("Info() misses component line %q: %q", line, info)
		}
	}
}
