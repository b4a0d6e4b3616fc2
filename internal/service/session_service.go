package service

import (
	"context"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/logger"
	"notequiz/internal/validation"

	"go.uber.org/zap"
)

// resultNotSavedNotice is attached to a completion response when the attempt
// could not be written to the user's history. The result itself is still
// returned; persistence never blocks completion.
const resultNotSavedNotice = "Your result could not be saved to your attempt history."

// SessionService drives the live quiz session through its lifecycle. Every
// call loads the owner's session, applies one transition and saves it back.
type SessionService interface {
	GetSession(ctx context.Context, ownerID string) (*dto.SessionView, error)
	SelectAnswer(ctx context.Context, ownerID string, req *dto.AnswerRequest) (*dto.SessionView, error)
	Advance(ctx context.Context, ownerID string, userID string) (*dto.SessionView, error)
	Skip(ctx context.Context, ownerID string, userID string) (*dto.SessionView, error)
	Previous(ctx context.Context, ownerID string) (*dto.SessionView, error)
	GoTo(ctx context.Context, ownerID string, index int) (*dto.SessionView, error)
	Review(ctx context.Context, ownerID string) (*dto.SessionView, error)
	BackToResults(ctx context.Context, ownerID string) (*dto.SessionView, error)
	Retake(ctx context.Context, ownerID string) (*dto.SessionView, error)
	ExitQuiz(ctx context.Context, ownerID string) error
}

type sessionService struct {
	sessionRepo domain.SessionRepository
	attempts    AttemptService
	resultCache ResultCacheService
	validator   *validation.Validator
}

// NewSessionService creates a new instance of sessionService. attempts and
// resultCache may be nil; completion then skips the corresponding side effect.
func NewSessionService(
	sessionRepo domain.SessionRepository,
	attempts AttemptService,
	resultCache ResultCacheService,
	validator *validation.Validator,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		attempts:    attempts,
		resultCache: resultCache,
		validator:   validator,
	}
}

// GetSession renders the owner's current session. An absent session is not an
// error: the caller gets an explicit no-quiz view to act on.
func (s *sessionService) GetSession(ctx context.Context, ownerID string) (*dto.SessionView, error) {
	session, err := s.load(ctx, ownerID)
	if err != nil {
		if domainErr, ok := err.(*domain.DomainError); ok && domainErr.Code == domain.ErrNoActiveQuiz {
			return noQuizView(), nil
		}
		return nil, err
	}
	return buildView(session, ""), nil
}

// SelectAnswer records an option letter for a question. Re-answering
// overwrites; the last choice wins.
func (s *sessionService) SelectAnswer(ctx context.Context, ownerID string, req *dto.AnswerRequest) (*dto.SessionView, error) {
	if errs := s.validator.ValidateAnswerRequest(req); len(errs) > 0 {
		return nil, errs
	}
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.SelectAnswer(req.QuestionID, req.Answer)
	})
}

// Advance moves to the next question; on the last question it completes the
// attempt and triggers the completion side effects.
func (s *sessionService) Advance(ctx context.Context, ownerID string, userID string) (*dto.SessionView, error) {
	return s.advance(ctx, ownerID, userID, (*domain.QuizSession).Next)
}

// Skip behaves exactly like Advance; the skipped question simply keeps no
// ledger entry.
func (s *sessionService) Skip(ctx context.Context, ownerID string, userID string) (*dto.SessionView, error) {
	return s.advance(ctx, ownerID, userID, (*domain.QuizSession).Skip)
}

func (s *sessionService) advance(ctx context.Context, ownerID string, userID string, step func(*domain.QuizSession) error) (*dto.SessionView, error) {
	session, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := step(session); err != nil {
		return nil, err
	}

	notice := ""
	if session.State == domain.StateCompleted {
		notice = s.onCompleted(ctx, ownerID, userID, session)
	}

	if err := s.sessionRepo.Save(ctx, ownerID, session); err != nil {
		return nil, domain.NewInternalError("failed to save quiz session", err)
	}
	return buildView(session, notice), nil
}

// Previous moves back one question, clamped at the first.
func (s *sessionService) Previous(ctx context.Context, ownerID string) (*dto.SessionView, error) {
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.Previous()
	})
}

// GoTo jumps straight to a question index for non-linear answering or review
// navigation.
func (s *sessionService) GoTo(ctx context.Context, ownerID string, index int) (*dto.SessionView, error) {
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.JumpTo(index)
	})
}

// Review switches a completed attempt into the read-only answer review.
func (s *sessionService) Review(ctx context.Context, ownerID string) (*dto.SessionView, error) {
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.Review()
	})
}

// BackToResults returns from the review to the result summary.
func (s *sessionService) BackToResults(ctx context.Context, ownerID string) (*dto.SessionView, error) {
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.BackToResults()
	})
}

// Retake restarts the attempt over the same questions with a fresh ledger
// and timer.
func (s *sessionService) Retake(ctx context.Context, ownerID string) (*dto.SessionView, error) {
	return s.mutate(ctx, ownerID, func(session *domain.QuizSession) error {
		return session.Retake()
	})
}

// ExitQuiz discards the owner's session outright. Exiting with no session is
// a no-op.
func (s *sessionService) ExitQuiz(ctx context.Context, ownerID string) error {
	if err := s.sessionRepo.Clear(ctx, ownerID); err != nil {
		return domain.NewInternalError("failed to clear quiz session", err)
	}
	logger.Get().Info("Quiz session cleared", zap.String("ownerID", ownerID))
	return nil
}

func (s *sessionService) load(ctx context.Context, ownerID string) (*domain.QuizSession, error) {
	session, err := s.sessionRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz session", err)
	}
	if session == nil {
		return nil, domain.NewNoActiveQuizError()
	}
	return session, nil
}

func (s *sessionService) mutate(ctx context.Context, ownerID string, apply func(*domain.QuizSession) error) (*dto.SessionView, error) {
	session, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, ownerID, session); err != nil {
		return nil, domain.NewInternalError("failed to save quiz session", err)
	}
	return buildView(session, ""), nil
}

// onCompleted runs the completion side effects: the attempt row for signed-in
// users, the result cache entry for anonymous ones. Both are best effort and
// only ever surface as a notice on the response.
func (s *sessionService) onCompleted(ctx context.Context, ownerID string, userID string, session *domain.QuizSession) string {
	appLogger := logger.Get()

	if userID != "" {
		if s.attempts == nil {
			return ""
		}
		if err := s.attempts.RecordAttempt(ctx, userID, session); err != nil {
			appLogger.Warn("Failed to record completed attempt",
				zap.Error(err), zap.String("userID", userID))
			return resultNotSavedNotice
		}
		return ""
	}

	if s.resultCache != nil {
		result := resultResponse(session.Result, "")
		if err := s.resultCache.Put(ctx, ownerID, result); err != nil {
			appLogger.Warn("Failed to cache anonymous quiz result",
				zap.Error(err), zap.String("ownerID", ownerID))
		}
	}
	return ""
}

func noQuizView() *dto.SessionView {
	return &dto.SessionView{
		State:   string(domain.StateNoQuiz),
		Message: "No quiz in progress. Upload a document to generate one.",
	}
}

func resultResponse(result *domain.QuizResult, notice string) *dto.QuizResultResponse {
	return &dto.QuizResultResponse{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Accuracy:       domain.AccuracyPercent(result.Score, result.TotalQuestions),
		TimeTaken:      result.TimeTaken,
		Notice:         notice,
	}
}

// buildView renders the state-dependent session view. Correct answers and
// explanations appear only in the Reviewing rendering.
func buildView(session *domain.QuizSession, notice string) *dto.SessionView {
	noteSet := &dto.NoteSetResponse{
		ID:          session.Quiz.NoteSet.ID,
		Name:        session.Quiz.NoteSet.Name,
		Description: session.Quiz.NoteSet.Description,
	}
	view := &dto.SessionView{
		State:          string(session.State),
		NoteSet:        noteSet,
		TotalQuestions: session.Total(),
		Current:        session.Current,
	}

	switch session.State {
	case domain.StateTaking:
		question := session.CurrentQuestion()
		selected, _ := session.Answers.Get(question.ID)
		view.Progress = session.Progress()
		view.Question = &dto.QuestionView{
			ID:       question.ID,
			Text:     question.Text,
			Options:  question.Options,
			Selected: selected,
		}
	case domain.StateCompleted:
		view.Result = resultResponse(session.Result, notice)
	case domain.StateReviewing:
		view.Result = resultResponse(session.Result, notice)
		view.Review = make([]dto.ReviewQuestionView, 0, session.Total())
		for _, question := range session.Questions {
			selected, answered := session.Answers.Get(question.ID)
			view.Review = append(view.Review, dto.ReviewQuestionView{
				ID:            question.ID,
				Text:          question.Text,
				Options:       question.Options,
				Selected:      selected,
				CorrectAnswer: question.CorrectAnswer,
				Correct:       answered && selected == question.CorrectAnswer,
				Explanation:   question.Explanation,
			})
		}
	}
	return view
}
