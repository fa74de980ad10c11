package gamification

import (
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAwardGoalCompleted_FirstGoal(t *testing.T) {
	s := &domain.UserStats{UserID: "u1"}
	now := time.Now().UTC()

	badges := AwardGoalCompleted(s, now)

	assert.Equal(t, 100, s.Points)
	assert.Equal(t, 1, s.GoalsCompleted)
	require.Len(t, badges, 1)
	assert.Equal(t, domain.BadgeFirstStep, badges[0].Code)
	assert.True(t, s.HasBadge(domain.BadgeFirstStep))
}

func TestAwardGoalCompleted_BadgesNotRepeated(t *testing.T) {
	s := &domain.UserStats{UserID: "u1"}
	now := time.Now().UTC()

	var all []domain.Badge
	for i := 0; i < 10; i++ {
		all = append(all, AwardGoalCompleted(s, now)...)
	}

	codes := map[domain.BadgeCode]int{}
	for _, b := range all {
		codes[b.Code]++
	}
	assert.Equal(t, map[domain.BadgeCode]int{
		domain.BadgeFirstStep:  1,
		domain.BadgeGoalGetter: 1,
		domain.BadgePathfinder: 1,
		domain.BadgeCenturion:  1,
	}, codes)
	assert.Equal(t, 1000, s.Points)
}

func TestAwardRoadmapGenerated(t *testing.T) {
	s := &domain.UserStats{UserID: "u1", Points: 995}
	badges := AwardRoadmapGenerated(s, time.Now())

	assert.Equal(t, 1005, s.Points)
	assert.Equal(t, 0, s.GoalsCompleted)
	require.Len(t, badges, 1)
	assert.Equal(t, domain.BadgeCenturion, badges[0].Code)
}

func TestLookup(t *testing.T) {
	rule, ok := Lookup(domain.BadgeGoalGetter)
	require.True(t, ok)
	assert.Equal(t, "Goal Getter", rule.Title)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
