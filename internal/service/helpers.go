package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

// ownedGoal loads a goal and hides goals of other users behind ErrNotFound.
func ownedGoal(ctx context.Context, goals repository.GoalRepo, userID, goalID string) (*domain.Goal, error) {
	if strings.TrimSpace(goalID) == "" {
		return nil, fmt.Errorf("%w: goal_id is required", ErrInvalidInput)
	}
	g, err := goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, fmt.Errorf("goal: %w", ErrNotFound)
	}
	return g, nil
}

// invalid wraps a domain validation error as ErrInvalidInput.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// badgeCodes joins badge codes for use-case fields.
func badgeCodes(badges []domain.Badge) string {
	codes := make([]string, len(badges))
	for i, b := range badges {
		codes[i] = string(b.Code)
	}
	return strings.Join(codes, ",")
}
