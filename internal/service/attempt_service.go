package service

import (
	"context"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/logger"
	"notequiz/internal/util"

	"go.uber.org/zap"
)

const (
	defaultAttemptsLimit = 10
	maxAttemptsLimit     = 50
)

// AttemptService records completed quiz attempts and lists a user's history.
type AttemptService interface {
	RecordAttempt(ctx context.Context, userID string, session *domain.QuizSession) error
	GetMyAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptsResponse, error)
}

type attemptService struct {
	attemptRepo domain.AttemptRepository
	noteSetRepo domain.NoteSetRepository
}

// NewAttemptService creates a new instance of attemptService.
func NewAttemptService(attemptRepo domain.AttemptRepository, noteSetRepo domain.NoteSetRepository) AttemptService {
	return &attemptService{
		attemptRepo: attemptRepo,
		noteSetRepo: noteSetRepo,
	}
}

// RecordAttempt persists the result of a completed session for the given
// user. The session must already hold a computed result.
func (s *attemptService) RecordAttempt(ctx context.Context, userID string, session *domain.QuizSession) error {
	if session == nil || session.Result == nil {
		return domain.NewInvalidInputError("session has no result to record")
	}

	answers := make(domain.AnswerLedger, len(session.Answers))
	for id, letter := range session.Answers {
		answers[id] = letter
	}

	attempt := &domain.QuizAttempt{
		ID:             util.NewULID(),
		NoteSetID:      session.Quiz.NoteSet.ID,
		UserID:         userID,
		Answers:        answers,
		Score:          session.Result.Score,
		TotalQuestions: session.Result.TotalQuestions,
		TimeTaken:      session.Result.TimeTaken,
		AttemptedAt:    time.Now(),
	}
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return domain.NewInternalError("failed to record quiz attempt", err)
	}

	logger.Get().Info("Quiz attempt recorded",
		zap.String("attemptID", attempt.ID),
		zap.String("userID", userID),
		zap.Int("score", attempt.Score),
		zap.Int("totalQuestions", attempt.TotalQuestions))
	return nil
}

// GetMyAttempts lists the user's past attempts, newest first.
func (s *attemptService) GetMyAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptsResponse, error) {
	limit := pagination.Limit
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	if limit > maxAttemptsLimit {
		limit = maxAttemptsLimit
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}

	attempts, total, err := s.attemptRepo.GetAttemptsByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quiz attempts", err)
	}

	items := make([]dto.AttemptItem, 0, len(attempts))
	noteSetNames := make(map[string]string)
	for _, attempt := range attempts {
		name, ok := noteSetNames[attempt.NoteSetID]
		if !ok {
			name = s.lookupNoteSetName(ctx, attempt.NoteSetID)
			noteSetNames[attempt.NoteSetID] = name
		}
		items = append(items, dto.AttemptItem{
			AttemptID:      attempt.ID,
			NoteSetID:      attempt.NoteSetID,
			NoteSetName:    name,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
			Accuracy:       domain.AccuracyPercent(attempt.Score, attempt.TotalQuestions),
			TimeTaken:      attempt.TimeTaken,
			AttemptedAt:    attempt.AttemptedAt,
		})
	}

	return &dto.AttemptsResponse{
		Attempts: items,
		PaginationInfo: dto.PaginationInfo{
			TotalItems: total,
			Limit:      limit,
			Offset:     offset,
		},
	}, nil
}

func (s *attemptService) lookupNoteSetName(ctx context.Context, noteSetID string) string {
	if s.noteSetRepo == nil {
		return ""
	}
	noteSet, err := s.noteSetRepo.GetNoteSetByID(ctx, noteSetID)
	if err != nil {
		logger.Get().Warn("Failed to resolve note set name for attempt listing",
			zap.Error(err), zap.String("noteSetID", noteSetID))
		return ""
	}
	if noteSet == nil {
		return ""
	}
	return noteSet.Name
}
