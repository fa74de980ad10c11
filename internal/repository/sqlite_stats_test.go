package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepo_GetWithoutActivity(t *testing.T) {
	conn := testutil.NewTestDB(t)
	u := seedUser(t, conn, "ada")

	s, err := NewSQLiteStatsRepo(conn).Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, s.UserID)
	assert.Zero(t, s.Points)
	assert.Zero(t, s.GoalsCompleted)
	assert.Empty(t, s.Badges)
}

func TestStatsRepo_SaveIsIdempotentForBadges(t *testing.T) {
	conn := testutil.NewTestDB(t)
	u := seedUser(t, conn, "ada")
	repo := NewSQLiteStatsRepo(conn)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	s := &domain.UserStats{
		UserID:         u.ID,
		Points:         100,
		GoalsCompleted: 1,
		Badges:         []domain.Badge{{Code: domain.BadgeFirstStep, AwardedAt: now}},
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Save(ctx, s))

	s.Points = 200
	s.GoalsCompleted = 2
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, got.Points)
	assert.Equal(t, 2, got.GoalsCompleted)
	require.Len(t, got.Badges, 1)
	assert.Equal(t, domain.BadgeFirstStep, got.Badges[0].Code)
	assert.True(t, got.HasBadge(domain.BadgeFirstStep))
}
