package configs

import "pledge-engine/internal/core/calendar"

// Campaign configures how campaign dates are interpreted. Every campaign is
// defined in a single civil timezone; changing it is a deployment decision,
// never a per-request option.
type Campaign struct {
	// Timezone is the IANA name of the zone campaign dates are defined in.
	Timezone string `env:"TIMEZONE" envDefault:"Australia/Melbourne"`
}

// Zone resolves Timezone.
func (c Campaign) Zone() (calendar.Zone, error) {
	return calendar.LoadZone(c.Timezone)
}
