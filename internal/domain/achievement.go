package domain

import "time"

// BadgeCode identifies an achievement badge.
type BadgeCode string

const (
	BadgeFirstStep  BadgeCode = "first_step"
	BadgeGoalGetter BadgeCode = "goal_getter"
	BadgePathfinder BadgeCode = "pathfinder"
	BadgeCenturion  BadgeCode = "centurion"
)

// Badge is an earned achievement.
type Badge struct {
	Code      BadgeCode
	AwardedAt time.Time
}

// UserStats is the gamification counter row for a user.
type UserStats struct {
	UserID         string
	Points         int
	GoalsCompleted int
	Badges         []Badge
	UpdatedAt      time.Time
}

// HasBadge reports whether the badge has already been earned.
func (s *UserStats) HasBadge(code BadgeCode) bool {
	for _, b := range s.Badges {
		if b.Code == code {
			return true
		}
	}
	return false
}
