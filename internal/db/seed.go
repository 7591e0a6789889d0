package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pledge-engine/internal/core/calendar"
)

type seedCampaign struct {
	slug, title, description string
	// Offsets in days from today; nil leaves the date unset.
	start       int
	end         *int
	ongoing     bool
	signupStart *int
	signupEnd   *int
	minimum     string
	maximum     *string
	presets     []string
	allowCustom bool
}

func days(n int) *int { return &n }

func amount(s string) *string { return &s }

// Seed inserts demo campaigns whose windows are placed around today in
// zone, so that every lifecycle status is represented.
func Seed(ctx context.Context, db *pgxpool.Pool, zone calendar.Zone, now time.Time) error {
	today := zone.Today(now)

	campaigns := []seedCampaign{
		{slug: "spring-clean", title: "Spring Clean", description: "Pick up litter every day.",
			start: 5, end: days(15), minimum: "1", presets: []string{"2", "5", "10"}, allowCustom: true},
		{slug: "walk-for-water", title: "Walk for Water", description: "Walk 5km a day.",
			start: -10, end: days(20), minimum: "2", maximum: amount("50"), presets: []string{"5", "10", "20"}},
		{slug: "last-lap", title: "Last Lap", description: "The final days of the relay.",
			start: -20, end: days(1), minimum: "1", allowCustom: true},
		{slug: "winter-warmers", title: "Winter Warmers", description: "Knit a square a day.",
			start: -40, end: days(-5), minimum: "1", allowCustom: true},
		{slug: "always-on", title: "Always On", description: "Give a little, every day.",
			start: -100, ongoing: true, signupEnd: days(30), minimum: "0.50", allowCustom: true},
		{slug: "early-birds", title: "Early Birds", description: "Signup opens before the start.",
			start: 30, end: days(60), signupStart: days(7), signupEnd: days(29), minimum: "5",
			maximum: amount("100"), presets: []string{"5", "10", "25", "50"}},
	}

	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, slug, title, description, start_date, end_date, is_ongoing, signup_start_date, signup_end_date,
     minimum_amount, maximum_amount, preset_amounts, allow_custom_amount, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5::text::date,$6::text::date,$7,$8::text::date,$9::text::date,
        $10::text::numeric,$11::text::numeric,$12::text[]::numeric[],$13,now(),now())
ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), c.slug, c.title, c.description,
			offset(today, &c.start), offset(today, c.end), c.ongoing,
			offset(today, c.signupStart), offset(today, c.signupEnd),
			c.minimum, c.maximum, c.presets, c.allowCustom)
		if err != nil {
			return err
		}
	}
	return nil
}

// offset returns today+n as a YYYY-MM-DD string, or nil for a nil offset.
func offset(today calendar.Date, n *int) *string {
	if n == nil {
		return nil
	}
	s := today.AddDays(*n).String()
	return &s
}
