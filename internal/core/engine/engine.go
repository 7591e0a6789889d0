// Package engine derives everything the pledge pages need from a campaign
// window and an instant: lifecycle status, signup eligibility, the billing
// total for a daily pledge, and amount validation. Every function is pure;
// the current instant is always passed in by the caller.
package engine

import (
	"pledge-engine/internal/core/calendar"
)

// Engine evaluates campaign windows in a fixed civil timezone. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	zone calendar.Zone
}

// New returns an Engine bound to zone.
func New(zone calendar.Zone) *Engine {
	return &Engine{zone: zone}
}

// Zone returns the timezone the engine evaluates dates in.
func (e *Engine) Zone() calendar.Zone {
	return e.zone
}
