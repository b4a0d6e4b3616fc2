package service

import (
	"context"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockSessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, ownerID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, ownerID string, session *domain.QuizSession) error {
	args := m.Called(ctx, ownerID, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Clear(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// --- MockQuestionGenerator ---
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) GenerateQuestions(ctx context.Context, sourceText string, opts domain.GenerationOptions) ([]domain.RawQuestion, error) {
	args := m.Called(ctx, sourceText, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawQuestion), args.Error(1)
}

// --- MockNoteSetRepository ---
type MockNoteSetRepository struct {
	mock.Mock
}

func (m *MockNoteSetRepository) CreateNoteSet(ctx context.Context, noteSet *domain.NoteSet) error {
	args := m.Called(ctx, noteSet)
	return args.Error(0)
}

func (m *MockNoteSetRepository) GetNoteSetByID(ctx context.Context, id string) (*domain.NoteSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoteSet), args.Error(1)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAttemptsByUserID(ctx context.Context, userID string, limit, offset int) ([]*domain.QuizAttempt, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.QuizAttempt), args.Get(1).(int64), args.Error(2)
}

// --- MockAttemptService ---
type MockAttemptService struct {
	mock.Mock
}

func (m *MockAttemptService) RecordAttempt(ctx context.Context, userID string, session *domain.QuizSession) error {
	args := m.Called(ctx, userID, session)
	return args.Error(0)
}

func (m *MockAttemptService) GetMyAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptsResponse, error) {
	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AttemptsResponse), args.Error(1)
}

// --- MockResultCacheService ---
type MockResultCacheService struct {
	mock.Mock
}

func (m *MockResultCacheService) Put(ctx context.Context, ownerID string, result *dto.QuizResultResponse) error {
	args := m.Called(ctx, ownerID, result)
	return args.Error(0)
}

func (m *MockResultCacheService) Get(ctx context.Context, ownerID string) (*dto.QuizResultResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizResultResponse), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
