package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

func (r *SQLiteAnswerRepo) ReplaceAll(ctx context.Context, userID string, answers []domain.AssessmentAnswer) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessment_answers WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting answers: %w", err)
	}
	query := `INSERT INTO assessment_answers (user_id, question_id, letter, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, question_id) DO UPDATE SET letter = excluded.letter, created_at = excluded.created_at`
	for _, a := range answers {
		_, err := r.db.ExecContext(ctx, query, userID, a.QuestionID, string(a.Letter), formatTime(a.CreatedAt))
		if err != nil {
			return fmt.Errorf("inserting answer for question %d: %w", a.QuestionID, err)
		}
	}
	return nil
}

func (r *SQLiteAnswerRepo) ListByUser(ctx context.Context, userID string) ([]domain.AssessmentAnswer, error) {
	query := `SELECT user_id, question_id, letter, created_at FROM assessment_answers
		WHERE user_id = ? ORDER BY question_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.AssessmentAnswer
	for rows.Next() {
		var a domain.AssessmentAnswer
		var letter, createdAtStr string
		if err := rows.Scan(&a.UserID, &a.QuestionID, &letter, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.Letter = domain.OptionLetter(letter)
		if a.CreatedAt, err = parseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}
