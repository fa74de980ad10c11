package domain

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	PassHash  string
	IsAdmin   bool
	CreatedAt time.Time
}

// AssessmentAnswer is a user's choice for one question.
type AssessmentAnswer struct {
	UserID     string
	QuestionID int
	Letter     OptionLetter
	CreatedAt  time.Time
}
