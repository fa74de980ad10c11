// Package gamification holds the static points and badge tables.
package gamification

import (
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
)

const (
	PointsGoalCompleted    = 100
	PointsRoadmapGenerated = 10
)

// BadgeRule awards Code once its threshold is met.
type BadgeRule struct {
	Code        domain.BadgeCode
	Title       string
	Description string
	Earned      func(s *domain.UserStats) bool
}

// Badges is the badge table, in display order.
var Badges = []BadgeRule{
	{
		Code:        domain.BadgeFirstStep,
		Title:       "First Step",
		Description: "Complete your first goal",
		Earned:      func(s *domain.UserStats) bool { return s.GoalsCompleted >= 1 },
	},
	{
		Code:        domain.BadgeGoalGetter,
		Title:       "Goal Getter",
		Description: "Complete five goals",
		Earned:      func(s *domain.UserStats) bool { return s.GoalsCompleted >= 5 },
	},
	{
		Code:        domain.BadgePathfinder,
		Title:       "Pathfinder",
		Description: "Complete ten goals",
		Earned:      func(s *domain.UserStats) bool { return s.GoalsCompleted >= 10 },
	},
	{
		Code:        domain.BadgeCenturion,
		Title:       "Centurion",
		Description: "Reach 1000 points",
		Earned:      func(s *domain.UserStats) bool { return s.Points >= 1000 },
	},
}

// Lookup returns the rule for code.
func Lookup(code domain.BadgeCode) (BadgeRule, bool) {
	for _, b := range Badges {
		if b.Code == code {
			return b, true
		}
	}
	return BadgeRule{}, false
}

// AwardGoalCompleted credits a completed goal and returns newly earned badges.
func AwardGoalCompleted(s *domain.UserStats, now time.Time) []domain.Badge {
	s.Points += PointsGoalCompleted
	s.GoalsCompleted++
	s.UpdatedAt = now
	return grantNewBadges(s, now)
}

// AwardRoadmapGenerated credits a goal's first generated roadmap.
func AwardRoadmapGenerated(s *domain.UserStats, now time.Time) []domain.Badge {
	s.Points += PointsRoadmapGenerated
	s.UpdatedAt = now
	return grantNewBadges(s, now)
}

func grantNewBadges(s *domain.UserStats, now time.Time) []domain.Badge {
	var fresh []domain.Badge
	for _, rule := range Badges {
		if s.HasBadge(rule.Code) || !rule.Earned(s) {
			continue
		}
		b := domain.Badge{Code: rule.Code, AwardedAt: now}
		s.Badges = append(s.Badges, b)
		fresh = append(fresh, b)
	}
	return fresh
}
