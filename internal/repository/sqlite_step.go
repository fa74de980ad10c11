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

// SQLiteStepRepo implements StepRepo using a SQLite database.
type SQLiteStepRepo struct {
	db db.DBTX
}

// NewSQLiteStepRepo creates a new SQLiteStepRepo.
func NewSQLiteStepRepo(conn db.DBTX) *SQLiteStepRepo {
	return &SQLiteStepRepo{db: conn}
}

const dateLayout = "2006-01-02"

const stepColumns = `s.id, s.goal_id, s.text, s.order_index, s.completed, s.due_date, s.created_at`

func (r *SQLiteStepRepo) Create(ctx context.Context, s *domain.RoadmapStep) error {
	query := `INSERT INTO roadmap_steps (id, goal_id, text, order_index, completed, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.GoalID,
		s.Text,
		s.Order,
		boolToInt(s.Completed),
		nullableTimeToString(s.DueDate, dateLayout),
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting roadmap step: %w", err)
	}
	return nil
}

func (r *SQLiteStepRepo) GetByID(ctx context.Context, id string) (*domain.RoadmapStep, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+stepColumns+` FROM roadmap_steps s WHERE s.id = ?`, id)
	return r.scanStep(row)
}

func (r *SQLiteStepRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.RoadmapStep, error) {
	query := `SELECT ` + stepColumns + ` FROM roadmap_steps s
		WHERE s.goal_id = ? ORDER BY s.order_index, s.created_at, s.rowid`
	return r.list(ctx, query, goalID)
}

func (r *SQLiteStepRepo) ListByUser(ctx context.Context, userID string) ([]*domain.RoadmapStep, error) {
	query := `SELECT ` + stepColumns + ` FROM roadmap_steps s
		JOIN goals g ON g.id = s.goal_id
		WHERE g.user_id = ? ORDER BY s.goal_id, s.order_index, s.rowid`
	return r.list(ctx, query, userID)
}

func (r *SQLiteStepRepo) list(ctx context.Context, query string, arg any) ([]*domain.RoadmapStep, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing roadmap steps: %w", err)
	}
	defer rows.Close()

	var steps []*domain.RoadmapStep
	for rows.Next() {
		s, err := r.scanStep(rows)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roadmap steps: %w", err)
	}
	return steps, nil
}

func (r *SQLiteStepRepo) Update(ctx context.Context, s *domain.RoadmapStep) error {
	query := `UPDATE roadmap_steps SET text = COALESCE(NULLIF(?, ''), text), order_index = ?, completed = ?, due_date = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Text,
		s.Order,
		boolToInt(s.Completed),
		nullableTimeToString(s.DueDate, dateLayout),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating roadmap step: %w", err)
	}
	return requireAffected(res, "roadmap step")
}

func (r *SQLiteStepRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_steps WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting roadmap step: %w", err)
	}
	return requireAffected(res, "roadmap step")
}

func (r *SQLiteStepRepo) scanStep(sc rowScanner) (*domain.RoadmapStep, error) {
	var s domain.RoadmapStep
	var completed int
	var dueDate sql.NullString
	var createdAtStr string

	err := sc.Scan(&s.ID, &s.GoalID, &s.Text, &s.Order, &completed, &dueDate, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("roadmap step: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning roadmap step: %w", err)
	}
	s.Completed = intToBool(completed)
	s.DueDate = parseNullableTime(dueDate, dateLayout)
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
