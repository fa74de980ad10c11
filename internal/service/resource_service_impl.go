package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/google/uuid"
)

type resourceService struct {
	resources repository.ResourceRepo
	goals     repository.GoalRepo
}

func NewResourceService(resources repository.ResourceRepo, goals repository.GoalRepo) ResourceService {
	return &resourceService{resources: resources, goals: goals}
}

func (s *resourceService) Create(ctx context.Context, userID string, in ResourceInput) (*domain.Resource, error) {
	if in.GoalID != nil {
		if _, err := ownedGoal(ctx, s.goals, userID, *in.GoalID); err != nil {
			return nil, err
		}
	}
	res := &domain.Resource{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     strings.TrimSpace(in.Title),
		Link:      strings.TrimSpace(in.Link),
		Category:  strings.TrimSpace(in.Category),
		GoalID:    in.GoalID,
		CreatedAt: time.Now().UTC(),
	}
	if err := res.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resourceService) Get(ctx context.Context, userID, resourceID string) (*domain.Resource, error) {
	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res.UserID != userID {
		return nil, fmt.Errorf("resource: %w", ErrNotFound)
	}
	return res, nil
}

func (s *resourceService) List(ctx context.Context, userID string, goalID *string) ([]*domain.Resource, error) {
	if goalID != nil {
		if _, err := ownedGoal(ctx, s.goals, userID, *goalID); err != nil {
			return nil, err
		}
	}
	return s.resources.List(ctx, repository.ResourceFilter{UserID: userID, GoalID: goalID})
}

func (s *resourceService) Delete(ctx context.Context, userID, resourceID string) error {
	if _, err := s.Get(ctx, userID, resourceID); err != nil {
		return err
	}
	return s.resources.Delete(ctx, resourceID)
}
