package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	users     *repository.SQLiteUserRepo
	questions *repository.SQLiteQuestionRepo
	answers   *repository.SQLiteAnswerRepo
	profiles  *repository.SQLiteProfileRepo
	goals     *repository.SQLiteGoalRepo
	steps     *repository.SQLiteStepRepo
	resources *repository.SQLiteResourceRepo
	stats     *repository.SQLiteStatsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		users:     repository.NewSQLiteUserRepo(database),
		questions: repository.NewSQLiteQuestionRepo(database),
		answers:   repository.NewSQLiteAnswerRepo(database),
		profiles:  repository.NewSQLiteProfileRepo(database),
		goals:     repository.NewSQLiteGoalRepo(database),
		steps:     repository.NewSQLiteStepRepo(database),
		resources: repository.NewSQLiteResourceRepo(database),
		stats:     repository.NewSQLiteStatsRepo(database),
	}
}

func (e *testEnv) user(t *testing.T, username string) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(username)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) goal(t *testing.T, userID, title string, opts ...testutil.GoalOption) *domain.Goal {
	t.Helper()
	g := testutil.NewTestGoal(userID, title, opts...)
	require.NoError(t, e.goals.Create(context.Background(), g))
	return g
}
