package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteStatsRepo stores points, completion counters and badges.
type SQLiteStatsRepo struct {
	db db.DBTX
}

// NewSQLiteStatsRepo creates a new SQLiteStatsRepo.
func NewSQLiteStatsRepo(conn db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: conn}
}

func (r *SQLiteStatsRepo) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	s := &domain.UserStats{UserID: userID}

	var updatedAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT points, goals_completed, updated_at FROM user_stats WHERE user_id = ?`, userID,
	).Scan(&s.Points, &s.GoalsCompleted, &updatedAtStr)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// No activity yet.
	case err != nil:
		return nil, fmt.Errorf("scanning user stats: %w", err)
	default:
		if s.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT code, awarded_at FROM user_badges WHERE user_id = ? ORDER BY awarded_at, code`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing badges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, awardedAtStr string
		if err := rows.Scan(&code, &awardedAtStr); err != nil {
			return nil, fmt.Errorf("scanning badge row: %w", err)
		}
		awardedAt, err := parseTime(awardedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing awarded_at: %w", err)
		}
		s.Badges = append(s.Badges, domain.Badge{Code: domain.BadgeCode(code), AwardedAt: awardedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating badges: %w", err)
	}
	return s, nil
}

func (r *SQLiteStatsRepo) Save(ctx context.Context, s *domain.UserStats) error {
	query := `INSERT INTO user_stats (user_id, points, goals_completed, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET points = excluded.points,
		goals_completed = excluded.goals_completed, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.Points, s.GoalsCompleted, formatTime(s.UpdatedAt)); err != nil {
		return fmt.Errorf("upserting user stats: %w", err)
	}
	for _, b := range s.Badges {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO user_badges (user_id, code, awarded_at) VALUES (?, ?, ?)`,
			s.UserID, string(b.Code), formatTime(b.AwardedAt))
		if err != nil {
			return fmt.Errorf("inserting badge %s: %w", b.Code, err)
		}
	}
	return nil
}
