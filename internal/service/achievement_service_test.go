package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementService_ReflectsCompletedGoals(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	ctx := context.Background()
	svc := NewAchievementService(env.stats)

	before, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, before.Points)

	_, err = NewGoalService(env.goals, env.uow).Complete(ctx, u.ID, g.ID)
	require.NoError(t, err)

	after, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Greater(t, after.Points, 0)
	assert.Equal(t, 1, after.GoalsCompleted)
	assert.NotEmpty(t, after.Badges)
}
