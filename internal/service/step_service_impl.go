package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/google/uuid"
)

type stepService struct {
	steps repository.StepRepo
	goals repository.GoalRepo
}

func NewStepService(steps repository.StepRepo, goals repository.GoalRepo) StepService {
	return &stepService{steps: steps, goals: goals}
}

func (s *stepService) Create(ctx context.Context, userID string, in StepInput) (*domain.RoadmapStep, error) {
	if _, err := ownedGoal(ctx, s.goals, userID, in.GoalID); err != nil {
		return nil, err
	}
	step := &domain.RoadmapStep{
		ID:        uuid.New().String(),
		GoalID:    in.GoalID,
		Text:      strings.TrimSpace(in.Text),
		Order:     in.Order,
		Completed: in.Completed,
		DueDate:   in.DueDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := step.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.steps.Create(ctx, step); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *stepService) Get(ctx context.Context, userID, stepID string) (*domain.RoadmapStep, error) {
	step, err := s.steps.GetByID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedGoal(ctx, s.goals, userID, step.GoalID); err != nil {
		return nil, err
	}
	return step, nil
}

func (s *stepService) List(ctx context.Context, userID string, goalID *string) ([]*domain.RoadmapStep, error) {
	if goalID == nil {
		return s.steps.ListByUser(ctx, userID)
	}
	if _, err := ownedGoal(ctx, s.goals, userID, *goalID); err != nil {
		return nil, err
	}
	return s.steps.ListByGoal(ctx, *goalID)
}

// Update replaces the step's order, completion flag and due date. Text is
// written only when given, so a blank edit never reverts a concurrent rename.
// The owning goal cannot change.
func (s *stepService) Update(ctx context.Context, userID, stepID string, in StepInput) (*domain.RoadmapStep, error) {
	step, err := s.Get(ctx, userID, stepID)
	if err != nil {
		return nil, err
	}
	write := *step
	write.Text = strings.TrimSpace(in.Text)
	write.Order = in.Order
	write.Completed = in.Completed
	write.DueDate = in.DueDate

	merged := write
	if merged.Text == "" {
		merged.Text = step.Text
	}
	if err := merged.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.steps.Update(ctx, &write); err != nil {
		return nil, err
	}
	return s.steps.GetByID(ctx, stepID)
}

func (s *stepService) Delete(ctx context.Context, userID, stepID string) error {
	if _, err := s.Get(ctx, userID, stepID); err != nil {
		return err
	}
	return s.steps.Delete(ctx, stepID)
}
