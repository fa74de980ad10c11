package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gamification"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_CreateValidates(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	svc := NewGoalService(env.goals, env.uow)
	ctx := context.Background()

	_, err := svc.Create(ctx, u.ID, GoalInput{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, u.ID, GoalInput{Title: strings.Repeat("t", domain.MaxGoalTitleLen+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	g, err := svc.Create(ctx, u.ID, GoalInput{Title: " Learn Go ", Category: "skills"})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", g.Title)
	assert.True(t, g.Roadmap.IsEmpty())

	goals, err := svc.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
}

func TestGoalService_ScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	ada := env.user(t, "ada")
	bob := env.user(t, "bob")
	g := env.goal(t, ada.ID, "Learn Go")
	svc := NewGoalService(env.goals, env.uow)
	ctx := context.Background()

	_, err := svc.Get(ctx, bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, bob.ID, g.ID, GoalInput{Title: "mine now"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob.ID, g.ID), ErrNotFound)

	_, err = svc.Complete(ctx, bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalService_UpdateKeepsBlankFields(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go", testutil.WithDescription("tour first"))
	svc := NewGoalService(env.goals, env.uow)

	updated, err := svc.Update(context.Background(), u.ID, g.ID, GoalInput{Category: "career"})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", updated.Title)
	assert.Equal(t, "tour first", updated.Description)
	assert.Equal(t, "career", updated.Category)
}

// interleavingGoalRepo runs between once, right after the first GetByID, so
// another request lands between a service's read and its write.
type interleavingGoalRepo struct {
	repository.GoalRepo
	once    sync.Once
	between func()
}

func (r *interleavingGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	g, err := r.GoalRepo.GetByID(ctx, id)
	r.once.Do(r.between)
	return g, err
}

func TestGoalService_UpdateKeepsConcurrentWrites(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	ctx := context.Background()
	other := NewGoalService(env.goals, env.uow)
	plan := domain.Roadmap{MilestoneStart: "take the tour", FullPlan: "tour, then a CLI"}

	racing := &interleavingGoalRepo{GoalRepo: env.goals, between: func() {
		_, err := other.Complete(ctx, u.ID, g.ID)
		require.NoError(t, err)

		stored, err := env.goals.GetByID(ctx, g.ID)
		require.NoError(t, err)
		stored.ReplaceRoadmap(plan, time.Now().UTC())
		require.NoError(t, env.goals.Update(ctx, stored))

		_, err = other.Update(ctx, u.ID, g.ID, GoalInput{Title: "Learn Go well"})
		require.NoError(t, err)
	}}
	svc := NewGoalService(racing, env.uow)

	updated, err := svc.Update(ctx, u.ID, g.ID, GoalInput{Category: "health"})
	require.NoError(t, err)
	assert.Equal(t, "health", updated.Category)
	assert.Equal(t, "Learn Go well", updated.Title)
	assert.True(t, updated.IsCompleted, "an edit must not revert completion")
	assert.Equal(t, plan, updated.Roadmap)
	assert.NotNil(t, updated.RoadmapGeneratedAt)

	again, err := svc.Complete(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.False(t, again.Awarded)

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, gamification.PointsGoalCompleted, stats.Points, "points are credited once")
	assert.Equal(t, 1, stats.GoalsCompleted)
}

func TestGoalService_CompleteAwardsOnce(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	svc := NewGoalService(env.goals, env.uow)
	ctx := context.Background()

	res, err := svc.Complete(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.True(t, res.Awarded)
	assert.Equal(t, gamification.PointsGoalCompleted, res.PointsEarned)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, domain.BadgeFirstStep, res.NewBadges[0].Code)
	assert.True(t, res.Goal.IsCompleted)

	again, err := svc.Complete(ctx, u.ID, g.ID)
	require.NoError(t, err)
	assert.False(t, again.Awarded)
	assert.Empty(t, again.NewBadges)

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Points)
	assert.Equal(t, 1, stats.GoalsCompleted)
	assert.Len(t, stats.Badges, 1)
}

func TestGoalService_CompleteReportsBadges(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	var buf bytes.Buffer
	svc := NewGoalService(env.goals, env.uow, NewLogUseCaseObserver(&buf))

	_, err := svc.Complete(context.Background(), u.ID, g.ID)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_case=complete-goal")
	assert.Contains(t, buf.String(), "new_badges=first_step")
}

func TestGoalService_CompleteRollsBackOnStatsFailure(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	ctx := context.Background()

	failing := &testutil.FailOnNthExecUoW{
		DB: env.db, FailOn: 1, Match: testutil.StmtUpsertStats, Err: errors.New("stats write failed"),
	}
	svc := NewGoalService(env.goals, failing)

	_, err := svc.Complete(ctx, u.ID, g.ID)
	require.Error(t, err)
	assert.Equal(t, []string{"complete-goal"}, failing.Names)

	stored, err := env.goals.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsCompleted, "goal completion rolls back with the points")

	stats, err := env.stats.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Points)
}

func TestGoalService_DeleteRemovesGoal(t *testing.T) {
	env := newTestEnv(t)
	u := env.user(t, "ada")
	g := env.goal(t, u.ID, "Learn Go")
	svc := NewGoalService(env.goals, env.uow)

	require.NoError(t, svc.Delete(context.Background(), u.ID, g.ID))
	_, err := svc.Get(context.Background(), u.ID, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
