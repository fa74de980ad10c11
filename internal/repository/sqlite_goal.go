package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

const goalColumns = `id, user_id, title, description, category, is_completed, completed_at,
	milestone_start, milestone_3_months, milestone_6_months, milestone_9_months,
	milestone_12_months, full_plan, roadmap_generated_at, created_at, updated_at`

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.UserID,
		g.Title,
		g.Description,
		g.Category,
		boolToInt(g.IsCompleted),
		nullableTimeToString(g.CompletedAt, time.RFC3339),
		g.Roadmap.MilestoneStart,
		g.Roadmap.Milestone3Months,
		g.Roadmap.Milestone6Months,
		g.Roadmap.Milestone9Months,
		g.Roadmap.Milestone12Months,
		g.Roadmap.FullPlan,
		nullableTimeToString(g.RoadmapGeneratedAt, time.RFC3339),
		formatTime(g.CreatedAt),
		formatTime(g.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	return r.scanGoal(row)
}

func (r *SQLiteGoalRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

// Update writes every mutable column, including the six roadmap fields, so a
// regenerated roadmap always replaces the previous one wholesale.
func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET title = ?, description = ?, category = ?, is_completed = ?, completed_at = ?,
		milestone_start = ?, milestone_3_months = ?, milestone_6_months = ?, milestone_9_months = ?,
		milestone_12_months = ?, full_plan = ?, roadmap_generated_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		g.Title,
		g.Description,
		g.Category,
		boolToInt(g.IsCompleted),
		nullableTimeToString(g.CompletedAt, time.RFC3339),
		g.Roadmap.MilestoneStart,
		g.Roadmap.Milestone3Months,
		g.Roadmap.Milestone6Months,
		g.Roadmap.Milestone9Months,
		g.Roadmap.Milestone12Months,
		g.Roadmap.FullPlan,
		nullableTimeToString(g.RoadmapGeneratedAt, time.RFC3339),
		formatTime(g.UpdatedAt),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) UpdateDetails(ctx context.Context, id string, p GoalDetailsPatch, updatedAt time.Time) error {
	query := `UPDATE goals SET
		title = COALESCE(NULLIF(?, ''), title),
		description = COALESCE(NULLIF(?, ''), description),
		category = COALESCE(NULLIF(?, ''), category),
		updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.Category, formatTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("updating goal details: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return requireAffected(res, "goal")
}

func (r *SQLiteGoalRepo) scanGoal(s rowScanner) (*domain.Goal, error) {
	var g domain.Goal
	var isCompleted int
	var completedAt, generatedAt sql.NullString
	var createdAtStr, updatedAtStr string

	err := s.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.Category,
		&isCompleted, &completedAt,
		&g.Roadmap.MilestoneStart, &g.Roadmap.Milestone3Months, &g.Roadmap.Milestone6Months,
		&g.Roadmap.Milestone9Months, &g.Roadmap.Milestone12Months, &g.Roadmap.FullPlan,
		&generatedAt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}

	g.IsCompleted = intToBool(isCompleted)
	g.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	g.RoadmapGeneratedAt = parseNullableTime(generatedAt, time.RFC3339)
	if g.CreatedAt, err = parseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if g.UpdatedAt, err = parseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &g, nil
}

// requireAffected maps a zero-row write onto ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
