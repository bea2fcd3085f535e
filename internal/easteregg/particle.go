// ============================================================================
// mCalc - Terminal-Taschenrechner
// ============================================================================
//
// Package:     easteregg
// Description: Falling decorations for the hidden christmas screen
// Author:      Mike Stoffels
// Created:     2025-12-18
// License:     MIT
// ============================================================================

// Package easteregg generates the decorative particles of the christmas
// overlay and computes where they are at a given point in time.
package easteregg

import (
	"math/rand"
	"time"
)

// DefaultCount is the number of particles on screen
const DefaultCount = 75

// Kind is the decoration a particle shows
type Kind int

const (
	KindTree Kind = iota
	KindSnowflake
	KindGift
	KindStar
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindSnowflake:
		return "snowflake"
	case KindGift:
		return "gift"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Colour palette of the decorations
var (
	TreeShades = []string{
		"#22C55E", // green-500
		"#16A34A", // green-600
		"#10B981", // emerald-500
		"#0D9488", // teal-600
	}
	SnowflakeColor = "#BFDBFE"
	GiftColor      = "#EF4444"
	StarColor      = "#FACC15"
)

// Particle is one falling decoration
type Particle struct {
	Kind     Kind
	Color    string
	Delay    time.Duration
	Duration time.Duration
	Left     float64 // horizontal position in [0, 1)
	Size     float64 // nominal size in [20, 50)
}

// Generate creates count particles. Trees dominate the mix (70 %), followed
// by snowflakes (15 %), gifts (10 %) and stars (5 %).
func Generate(rng *rand.Rand, count int) []Particle {
	if count < 0 {
		count = 0
	}

	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		p := Particle{
			Delay:    seconds(rng.Float64() * 5),
			Duration: seconds(3 + rng.Float64()*5),
			Left:     rng.Float64(),
			Size:     20 + rng.Float64()*30,
		}

		switch t := rng.Float64(); {
		case t < 0.7:
			p.Kind = KindTree
			p.Color = TreeShades[rng.Intn(len(TreeShades))]
		case t < 0.85:
			p.Kind = KindSnowflake
			p.Color = SnowflakeColor
		case t < 0.95:
			p.Kind = KindGift
			p.Color = GiftColor
		default:
			p.Kind = KindStar
			p.Color = StarColor
		}

		particles = append(particles, p)
	}
	return particles
}

// Large reports whether the particle belongs to the bigger half
func (p Particle) Large() bool {
	return p.Size >= 35
}

// Column maps the horizontal position onto a grid of the given width
func (p Particle) Column(width int) int {
	if width <= 0 {
		return 0
	}
	col := int(p.Left * float64(width))
	if col >= width {
		col = width - 1
	}
	return col
}

// Row returns the grid row at the given time since the overlay opened.
// A particle waits for its delay, then falls from just above the top edge
// to just below the bottom edge and starts over.
func (p Particle) Row(elapsed time.Duration, height int) (int, bool) {
	if elapsed < p.Delay || p.Duration <= 0 || height <= 0 {
		return 0, false
	}

	cycle := (elapsed - p.Delay) % p.Duration
	progress := float64(cycle) / float64(p.Duration)
	row := int(progress*float64(height+2)) - 1
	if row < 0 || row >= height {
		return row, false
	}
	return row, true
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
