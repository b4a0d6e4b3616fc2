package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"notequiz/internal/cache"
	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/logger"

	"go.uber.org/zap"
)

// ErrResultNotFound is returned when a cached result is not found.
var ErrResultNotFound = errors.New("quiz result not found in cache")

// ResultCacheService keeps the last completed quiz result for anonymous
// owners, who have no attempt history rows to fall back on.
type ResultCacheService interface {
	Put(ctx context.Context, ownerID string, result *dto.QuizResultResponse) error
	Get(ctx context.Context, ownerID string) (*dto.QuizResultResponse, error)
}

type resultCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultCacheService creates a new instance of resultCacheServiceImpl.
// A nil cache yields a no-op implementation.
func NewResultCacheService(c domain.Cache, ttl time.Duration) ResultCacheService {
	if c == nil {
		logger.Get().Warn("ResultCacheService initialized with nil cache. Service will be no-op.")
		return &noopResultCacheService{}
	}
	return &resultCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *resultCacheServiceImpl) generateKey(ownerID string) string {
	return cache.GenerateCacheKey("anonymous", "result", ownerID)
}

// Put stores the quiz result for an anonymous owner in the cache.
func (s *resultCacheServiceImpl) Put(ctx context.Context, ownerID string, result *dto.QuizResultResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	key := s.generateKey(ownerID)
	dataBytes, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("Failed to marshal quiz result for caching", zap.Error(err), zap.String("ownerID", ownerID))
		return domain.NewInternalError("failed to marshal result for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to cache quiz result", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set quiz result to cache for key %s", key), err)
	}
	logger.Get().Debug("Successfully cached quiz result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves the quiz result for an anonymous owner from the cache.
func (s *resultCacheServiceImpl) Get(ctx context.Context, ownerID string) (*dto.QuizResultResponse, error) {
	key := s.generateKey(ownerID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Quiz result cache miss", zap.String("key", key))
			return nil, ErrResultNotFound
		}
		logger.Get().Error("Failed to get quiz result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz result from cache for key %s", key), err)
	}

	if dataString == "" {
		return nil, ErrResultNotFound
	}

	var result dto.QuizResultResponse
	if err := json.Unmarshal([]byte(dataString), &result); err != nil {
		logger.Get().Error("Failed to unmarshal quiz result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal result from cache for key %s", key), err)
	}

	return &result, nil
}

// noopResultCacheService is a no-op implementation for when caching is
// disabled or fails to initialize.
type noopResultCacheService struct{}

func (s *noopResultCacheService) Put(ctx context.Context, ownerID string, result *dto.QuizResultResponse) error {
	return nil
}

func (s *noopResultCacheService) Get(ctx context.Context, ownerID string) (*dto.QuizResultResponse, error) {
	return nil, ErrResultNotFound
}
