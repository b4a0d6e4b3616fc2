package service

import (
	"context"
	"strings"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/logger"
	"notequiz/internal/util"
	"notequiz/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation.
type QuizService interface {
	GenerateQuiz(ctx context.Context, ownerID string, userID string, sourceText string, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

// quizService implements QuizService. Generating a quiz replaces the owner's
// live session wholesale.
type quizService struct {
	generator   domain.QuestionGenerator
	noteSetRepo domain.NoteSetRepository
	sessionRepo domain.SessionRepository
	validator   *validation.Validator
}

// NewQuizService creates a new instance of quizService.
func NewQuizService(
	generator domain.QuestionGenerator,
	noteSetRepo domain.NoteSetRepository,
	sessionRepo domain.SessionRepository,
	validator *validation.Validator,
) QuizService {
	return &quizService{
		generator:   generator,
		noteSetRepo: noteSetRepo,
		sessionRepo: sessionRepo,
		validator:   validator,
	}
}

// GenerateQuiz implements QuizService. It validates the upload options, asks
// the generator for question records, persists the note set and starts a
// fresh quiz session for the owner.
func (s *quizService) GenerateQuiz(ctx context.Context, ownerID string, userID string, sourceText string, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	appLogger := logger.Get()

	if errs := s.validator.ValidateGenerateQuizRequest(req); len(errs) > 0 {
		return nil, errs
	}
	if strings.TrimSpace(sourceText) == "" {
		return nil, domain.NewInvalidInputError("uploaded document contains no text")
	}

	questions, err := s.generator.GenerateQuestions(ctx, sourceText, domain.GenerationOptions{
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		return nil, err
	}

	noteSet := &domain.NoteSet{
		ID:          util.NewULID(),
		Name:        req.NoteSetName,
		Description: req.NoteSetDescription,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	if s.noteSetRepo != nil {
		// The quiz lives in the session either way; a failed insert only
		// costs the attempt-history link.
		if err := s.noteSetRepo.CreateNoteSet(ctx, noteSet); err != nil {
			appLogger.Warn("Failed to persist note set, continuing with in-session quiz",
				zap.Error(err), zap.String("noteSetID", noteSet.ID))
		}
	}

	quiz := &domain.Quiz{
		Questions: questions,
		NoteSet:   *noteSet,
	}
	session := domain.NewQuizSession(quiz)
	if err := s.sessionRepo.Save(ctx, ownerID, session); err != nil {
		return nil, domain.NewInternalError("failed to start quiz session", err)
	}

	appLogger.Info("Quiz generated",
		zap.String("ownerID", ownerID),
		zap.String("noteSetID", noteSet.ID),
		zap.Int("numQuestions", len(questions)))

	return &dto.GenerateQuizResponse{
		Questions: questions,
		NoteSet: dto.NoteSetResponse{
			ID:          noteSet.ID,
			Name:        noteSet.Name,
			Description: noteSet.Description,
		},
	}, nil
}
