package calcview

import (
	"time"

	"github.com/msto63/mCalc/pkg/core/config"
)

// Message types for tea.Cmd async operations

// frameMsg advances the easter egg animation. gen identifies the overlay
// session so ticks of a dismissed overlay are dropped.
type frameMsg struct {
	gen int
	at  time.Time
}

// releaseMsg ends the highlight of a pressed key
type releaseMsg struct {
	seq int
}

// ConfigReloadedMsg carries a configuration loaded by the file watcher
type ConfigReloadedMsg struct {
	Config *config.Config
}
