package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteQuestionRepo reads the seeded assessment catalog.
type SQLiteQuestionRepo struct {
	db db.DBTX
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo.
func NewSQLiteQuestionRepo(conn db.DBTX) *SQLiteQuestionRepo {
	return &SQLiteQuestionRepo{db: conn}
}

func (r *SQLiteQuestionRepo) List(ctx context.Context) ([]*domain.AssessmentQuestion, error) {
	query := `SELECT question_id, dimension, text,
		option_a, value_a, option_b, value_b, option_c, value_c, option_d, value_d
		FROM assessment_questions ORDER BY question_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.AssessmentQuestion
	for rows.Next() {
		var q domain.AssessmentQuestion
		var dim string
		err := rows.Scan(&q.QuestionID, &dim, &q.Text,
			&q.Options[0].Label, &q.Options[0].Value,
			&q.Options[1].Label, &q.Options[1].Value,
			&q.Options[2].Label, &q.Options[2].Value,
			&q.Options[3].Label, &q.Options[3].Value,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning question row: %w", err)
		}
		q.Dimension = domain.Dimension(dim)
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}
