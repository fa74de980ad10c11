package service

import (
	"context"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/repository"
)

type achievementService struct {
	stats repository.StatsRepo
}

func NewAchievementService(stats repository.StatsRepo) AchievementService {
	return &achievementService{stats: stats}
}

func (s *achievementService) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	return s.stats.Get(ctx, userID)
}
