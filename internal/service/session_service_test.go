package service

import (
	"context"
	"errors"
	"testing"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleQuiz() *domain.Quiz {
	return &domain.Quiz{
		Questions: []domain.RawQuestion{
			{Question: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "B", Explanation: "e1"},
			{Question: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "C"},
			{Question: "Q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "A"},
			{Question: "Q4", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "D"},
		},
		NoteSet: domain.NoteSet{ID: "ns1", Name: "Biology"},
	}
}

func newSessionServiceForTest(repo *MockSessionRepository, attempts AttemptService, resultCache ResultCacheService) SessionService {
	return NewSessionService(repo, attempts, resultCache, validation.NewValidator())
}

func TestSessionService_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("NoActiveQuiz", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(nil, nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		view, err := svc.GetSession(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "no_quiz", view.State)
		assert.NotEmpty(t, view.Message)
		assert.Nil(t, view.Question)
	})

	t.Run("Taking", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		view, err := svc.GetSession(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "taking", view.State)
		assert.Equal(t, 4, view.TotalQuestions)
		require.NotNil(t, view.Question)
		assert.Equal(t, 0, view.Question.ID)
		assert.Equal(t, "Q1", view.Question.Text)
		assert.InDelta(t, 0.25, view.Progress, 1e-9)
		assert.Empty(t, view.Question.Selected)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(nil, errors.New("redis down"))
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.GetSession(ctx, "owner1")
		require.Error(t, err)
	})
}

func TestSessionService_SelectAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsAnswer", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		view, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 0, Answer: "B"})
		require.NoError(t, err)
		assert.Equal(t, "B", view.Question.Selected)
		repo.AssertExpectations(t)
	})

	t.Run("ReAnswerOverwrites", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 0, Answer: "A"})
		require.NoError(t, err)
		view, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 0, Answer: "D"})
		require.NoError(t, err)
		assert.Equal(t, "D", view.Question.Selected)
	})

	t.Run("InvalidLetter", func(t *testing.T) {
		repo := new(MockSessionRepository)
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 0, Answer: "E"})
		require.Error(t, err)
		var vErrs domain.ValidationErrors
		assert.ErrorAs(t, err, &vErrs)
		repo.AssertNotCalled(t, "Get")
	})

	t.Run("QuestionOutOfRange", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 99, Answer: "A"})
		require.Error(t, err)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrQuestionNotFound, domainErr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("NoActiveQuiz", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(nil, nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.SelectAnswer(ctx, "owner1", &dto.AnswerRequest{QuestionID: 0, Answer: "A"})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrNoActiveQuiz, domainErr.Code)
	})
}

func TestSessionService_Advance(t *testing.T) {
	ctx := context.Background()

	t.Run("MovesForward", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		view, err := svc.Advance(ctx, "owner1", "")
		require.NoError(t, err)
		assert.Equal(t, "taking", view.State)
		assert.Equal(t, 1, view.Current)
		assert.Equal(t, "Q2", view.Question.Text)
	})

	t.Run("LastQuestionCompletes", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Current = 3
		session.Answers.Record(0, "B")
		session.Answers.Record(1, "A")
		session.Answers.Record(2, "A")
		session.Answers.Record(3, "D")

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		view, err := svc.Advance(ctx, "owner1", "")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.State)
		require.NotNil(t, view.Result)
		assert.Equal(t, 3, view.Result.Score)
		assert.Equal(t, 4, view.Result.TotalQuestions)
		assert.Equal(t, 75, view.Result.Accuracy)
		assert.Nil(t, view.Question)
	})

	t.Run("CompletionRecordsAttemptForUser", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Current = 3

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "user42").Return(session, nil)
		repo.On("Save", ctx, "user42", session).Return(nil)
		attempts := new(MockAttemptService)
		attempts.On("RecordAttempt", ctx, "user42", session).Return(nil)
		svc := newSessionServiceForTest(repo, attempts, nil)

		view, err := svc.Advance(ctx, "user42", "user42")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.State)
		assert.Empty(t, view.Result.Notice)
		attempts.AssertExpectations(t)
	})

	t.Run("AttemptFailureSetsNoticeOnly", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Current = 3

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "user42").Return(session, nil)
		repo.On("Save", ctx, "user42", session).Return(nil)
		attempts := new(MockAttemptService)
		attempts.On("RecordAttempt", ctx, "user42", session).Return(errors.New("db down"))
		svc := newSessionServiceForTest(repo, attempts, nil)

		view, err := svc.Advance(ctx, "user42", "user42")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.State)
		assert.NotEmpty(t, view.Result.Notice)
	})

	t.Run("AnonymousCompletionCachesResult", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Current = 3
		session.Answers.Record(0, "B")

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "anon1").Return(session, nil)
		repo.On("Save", ctx, "anon1", session).Return(nil)
		resultCache := new(MockResultCacheService)
		resultCache.On("Put", ctx, "anon1", mock.MatchedBy(func(r *dto.QuizResultResponse) bool {
			return r.Score == 1 && r.TotalQuestions == 4 && r.Accuracy == 25
		})).Return(nil)
		svc := newSessionServiceForTest(repo, nil, resultCache)

		view, err := svc.Advance(ctx, "anon1", "")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.State)
		resultCache.AssertExpectations(t)
	})

	t.Run("AfterCompletionRejected", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Current = 3

		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		_, err := svc.Advance(ctx, "owner1", "")
		require.NoError(t, err)

		_, err = svc.Advance(ctx, "owner1", "")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrInvalidTransition, domainErr.Code)
	})
}

func TestSessionService_Skip(t *testing.T) {
	ctx := context.Background()

	t.Run("SkipAllScoresZero", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		var view *dto.SessionView
		var err error
		for i := 0; i < 4; i++ {
			view, err = svc.Skip(ctx, "owner1", "")
			require.NoError(t, err)
		}
		assert.Equal(t, "completed", view.State)
		assert.Equal(t, 0, view.Result.Score)
		assert.Equal(t, 0, view.Result.Accuracy)
	})
}

func TestSessionService_Navigation(t *testing.T) {
	ctx := context.Background()

	newService := func(session *domain.QuizSession) (SessionService, *MockSessionRepository) {
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		return newSessionServiceForTest(repo, nil, nil), repo
	}

	t.Run("PreviousClampsAtFirst", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		svc, _ := newService(session)

		view, err := svc.Previous(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, 0, view.Current)
	})

	t.Run("GoToRetainsAnswers", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		session.Answers.Record(2, "A")
		svc, _ := newService(session)

		view, err := svc.GoTo(ctx, "owner1", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, view.Current)
		assert.Equal(t, "A", view.Question.Selected)
	})

	t.Run("GoToOutOfRange", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		svc, _ := newService(session)

		_, err := svc.GoTo(ctx, "owner1", 4)
		require.Error(t, err)
	})
}

func TestSessionService_ReviewFlow(t *testing.T) {
	ctx := context.Background()

	completedSession := func() *domain.QuizSession {
		session := domain.NewQuizSession(sampleQuiz())
		session.Answers.Record(0, "B")
		session.Answers.Record(1, "A")
		session.Current = 3
		require.NoError(t, session.Next())
		return session
	}

	newService := func(session *domain.QuizSession) SessionService {
		repo := new(MockSessionRepository)
		repo.On("Get", ctx, "owner1").Return(session, nil)
		repo.On("Save", ctx, "owner1", session).Return(nil)
		return newSessionServiceForTest(repo, nil, nil)
	}

	t.Run("ReviewExposesCorrectAnswers", func(t *testing.T) {
		session := completedSession()
		svc := newService(session)

		view, err := svc.Review(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "reviewing", view.State)
		require.Len(t, view.Review, 4)
		assert.Equal(t, "B", view.Review[0].CorrectAnswer)
		assert.True(t, view.Review[0].Correct)
		assert.Equal(t, "A", view.Review[1].Selected)
		assert.False(t, view.Review[1].Correct)
		assert.False(t, view.Review[2].Correct) // unanswered
		assert.Equal(t, "e1", view.Review[0].Explanation)
	})

	t.Run("ReviewDoesNotMutateResult", func(t *testing.T) {
		session := completedSession()
		score := session.Result.Score
		svc := newService(session)

		_, err := svc.Review(ctx, "owner1")
		require.NoError(t, err)
		view, err := svc.BackToResults(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "completed", view.State)
		assert.Equal(t, score, view.Result.Score)
	})

	t.Run("RetakeResets", func(t *testing.T) {
		session := completedSession()
		svc := newService(session)

		view, err := svc.Retake(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "taking", view.State)
		assert.Equal(t, 0, view.Current)
		assert.Empty(t, view.Question.Selected)
		assert.Nil(t, view.Result)
		assert.Empty(t, session.Answers)
	})

	t.Run("ReviewWhileTakingRejected", func(t *testing.T) {
		session := domain.NewQuizSession(sampleQuiz())
		svc := newService(session)

		_, err := svc.Review(ctx, "owner1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrInvalidTransition, domainErr.Code)
	})
}

func TestSessionService_ExitQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearsSession", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Clear", ctx, "owner1").Return(nil)
		svc := newSessionServiceForTest(repo, nil, nil)

		require.NoError(t, svc.ExitQuiz(ctx, "owner1"))
		repo.AssertExpectations(t)
	})

	t.Run("ClearError", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Clear", ctx, "owner1").Return(errors.New("redis down"))
		svc := newSessionServiceForTest(repo, nil, nil)

		require.Error(t, svc.ExitQuiz(ctx, "owner1"))
	})
}
