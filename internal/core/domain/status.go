package domain

// Status is the lifecycle state of a campaign on a given day.
type Status string

const (
	StatusUpcoming   Status = "upcoming"
	StatusActive     Status = "active"
	StatusEndingSoon Status = "ending-soon"
	StatusEnded      Status = "ended"
	StatusOngoing    Status = "ongoing"
)

// Tier is an abstract severity used by presentation code to pick a visual
// treatment. It carries no styling.
type Tier string

const (
	TierInfo    Tier = "info"
	TierSuccess Tier = "success"
	TierWarning Tier = "warning"
	TierNeutral Tier = "neutral"
)

// Tier returns the severity tier for the status.
func (s Status) Tier() Tier {
	switch s {
	case StatusActive:
		return TierSuccess
	case StatusEndingSoon:
		return TierWarning
	case StatusEnded:
		return TierNeutral
	default:
		return TierInfo
	}
}

// CampaignStatus is the classified state of a campaign with its label.
type CampaignStatus struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
	Tier   Tier   `json:"tier"`
}
