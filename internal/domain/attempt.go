package domain

import (
	"context"
	"time"
)

// QuizAttempt is a completed attempt as handed to persistence: the payload
// computed by the scoring engine plus attribution.
type QuizAttempt struct {
	ID             string
	NoteSetID      string
	UserID         string
	Answers        AnswerLedger
	Score          int
	TotalQuestions int
	TimeTaken      int // whole seconds
	AttemptedAt    time.Time
}

// AttemptRepository persists completed quiz attempts and lists past ones.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]*QuizAttempt, int64, error)
}
