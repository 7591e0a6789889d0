package calendar

import (
	"fmt"
	"math"
	"time"

	// Campaign dates must resolve the same way on hosts without zoneinfo.
	_ "time/tzdata"
)

const day = 24 * time.Hour

// Zone is the fixed civil timezone every campaign is defined in.
type Zone struct {
	loc *time.Location
}

// LoadZone resolves an IANA zone name such as "Australia/Melbourne".
func LoadZone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return Zone{loc: loc}, nil
}

// NewZone wraps an already loaded location.
func NewZone(loc *time.Location) Zone {
	return Zone{loc: loc}
}

// Location returns the underlying location. A zero Zone behaves as UTC.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

func (z Zone) String() string {
	return z.Location().String()
}

// Today returns the civil date of now in the zone.
func (z Zone) Today(now time.Time) Date {
	return DateOf(now.In(z.Location()))
}

// Midnight returns the first instant of civil date d in the zone. The offset
// is resolved for d itself, so dates on either side of a daylight-saving
// transition get their own offset. When local midnight is skipped by a
// transition the instant the day actually begins is returned.
func (z Zone) Midnight(d Date) time.Time {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, z.Location())
	if z.Today(t).Before(d) {
		if _, end := t.ZoneBounds(); !end.IsZero() {
			t = end
		}
	}
	return t
}

// DaysBetween returns the number of whole civil days from one date to
// another; negative when to precedes from. The difference is taken between
// the two civil midnights and rounded, which absorbs the hour gained or lost
// across a daylight-saving transition.
func (z Zone) DaysBetween(from, to Date) int {
	diff := z.Midnight(to).Sub(z.Midnight(from))
	return int(math.Round(float64(diff) / float64(day)))
}
