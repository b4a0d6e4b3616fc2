package repository

import (
	"context"
	"fmt"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/repository/models"
	"notequiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	if m == nil {
		return nil
	}
	answers := make(domain.AnswerLedger, len(m.Answers))
	for id, letter := range m.Answers {
		answers[id] = letter
	}
	return &domain.QuizAttempt{
		ID:             m.ID,
		UserID:         m.UserID,
		NoteSetID:      m.NoteSetID,
		Answers:        answers,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		TimeTaken:      m.TimeTakenSeconds,
		AttemptedAt:    m.AttemptedAt,
	}
}

func fromDomainAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	if a == nil {
		return nil
	}
	answers := make(models.AnswerMap, len(a.Answers))
	for id, letter := range a.Answers {
		answers[id] = letter
	}
	return &models.QuizAttempt{
		ID:               a.ID,
		UserID:           a.UserID,
		NoteSetID:        a.NoteSetID,
		Answers:          answers,
		Score:            a.Score,
		TotalQuestions:   a.TotalQuestions,
		TimeTakenSeconds: a.TimeTaken,
		AttemptedAt:      a.AttemptedAt,
	}
}

// CreateAttempt inserts a completed quiz attempt.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	model := fromDomainAttempt(attempt)
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	if model.AttemptedAt.IsZero() {
		model.AttemptedAt = time.Now()
	}
	model.CreatedAt = time.Now()

	// Answers is bound as its JSON string form for Oracle compatibility
	answersVal, err := model.Answers.Value()
	if err != nil {
		return fmt.Errorf("failed to convert answers to string: %w", err)
	}

	query := `INSERT INTO quiz_attempts (ID, USER_ID, NOTE_SET_ID, ANSWERS, SCORE, TOTAL_QUESTIONS, TIME_TAKEN_SECONDS, ATTEMPTED_AT, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`

	_, err = r.db.ExecContext(ctx, query,
		model.ID,
		model.UserID,
		model.NoteSetID,
		answersVal,
		model.Score,
		model.TotalQuestions,
		model.TimeTakenSeconds,
		model.AttemptedAt,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// GetAttemptsByUserID returns a page of the user's attempts, newest first,
// together with the total count.
func (r *sqlxAttemptRepository) GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.QuizAttempt, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :1 AND DELETED_AT IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count quiz attempts: %w", err)
	}

	query := `SELECT ID, USER_ID, NOTE_SET_ID, ANSWERS, SCORE, TOTAL_QUESTIONS, TIME_TAKEN_SECONDS, ATTEMPTED_AT, CREATED_AT, DELETED_AT
	          FROM quiz_attempts
	          WHERE USER_ID = :1 AND DELETED_AT IS NULL
	          ORDER BY ATTEMPTED_AT DESC
	          OFFSET :2 ROWS FETCH NEXT :3 ROWS ONLY`

	var rows []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &rows, query, userID, offset, limit); err != nil {
		return nil, 0, fmt.Errorf("failed to get quiz attempts for user %s: %w", userID, err)
	}

	attempts := make([]*domain.QuizAttempt, len(rows))
	for i := range rows {
		attempts[i] = toDomainAttempt(&rows[i])
	}
	return attempts, total, nil
}
