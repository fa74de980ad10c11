package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gamification"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals    repository.GoalRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GoalService {
	return &goalService{goals: goals, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Create(ctx context.Context, userID string, in GoalInput) (*domain.Goal, error) {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := g.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) Get(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	return ownedGoal(ctx, s.goals, userID, goalID)
}

func (s *goalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}

// Update edits title, description and category. Completion and roadmap
// columns are never written here, so a concurrent Complete or roadmap
// generation is not reverted.
func (s *goalService) Update(ctx context.Context, userID, goalID string, in GoalInput) (*domain.Goal, error) {
	g, err := ownedGoal(ctx, s.goals, userID, goalID)
	if err != nil {
		return nil, err
	}
	patch := repository.GoalDetailsPatch{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
	}
	merged := *g
	if patch.Title != "" {
		merged.Title = patch.Title
	}
	if patch.Description != "" {
		merged.Description = patch.Description
	}
	if patch.Category != "" {
		merged.Category = patch.Category
	}
	if err := merged.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.goals.UpdateDetails(ctx, goalID, patch, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.goals.GetByID(ctx, goalID)
}

func (s *goalService) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := ownedGoal(ctx, s.goals, userID, goalID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, goalID)
}

// Complete marks the goal completed and credits points and badges in the same
// transaction. Completing an already completed goal awards nothing.
func (s *goalService) Complete(ctx context.Context, userID, goalID string) (result *CompletionResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "goal_id": goalID}
	defer observe(ctx, s.observer, "complete-goal", startedAt, fields, &err)

	err = s.uow.WithinTx(db.WithTxName(ctx, "complete-goal"), func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txStats := repository.NewSQLiteStatsRepo(tx)

		g, err := ownedGoal(ctx, txGoals, userID, goalID)
		if err != nil {
			return err
		}
		stats, err := txStats.Get(ctx, userID)
		if err != nil {
			return err
		}
		result = &CompletionResult{Goal: g, Stats: stats}

		now := time.Now().UTC()
		if !g.MarkCompleted(now) {
			return nil
		}
		if err := txGoals.Update(ctx, g); err != nil {
			return err
		}

		result.NewBadges = gamification.AwardGoalCompleted(stats, now)
		result.Awarded = true
		result.PointsEarned = gamification.PointsGoalCompleted
		return txStats.Save(ctx, stats)
	})
	if err != nil {
		return nil, err
	}
	fields["awarded"] = result.Awarded
	if len(result.NewBadges) > 0 {
		fields["new_badges"] = badgeCodes(result.NewBadges)
	}
	return result, nil
}
