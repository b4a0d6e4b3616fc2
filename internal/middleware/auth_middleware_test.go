package middleware_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/middleware"
	"notequiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock for the service.AuthService interface; only ValidateJWT is
// exercised by the middleware.
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) GetGoogleLoginURL(state string) string {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) HandleGoogleCallback(ctx context.Context, code string, receivedState string, expectedState string) (string, string, *domain.User, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *ManualMockAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	panic("not implemented in mock")
}

var _ service.AuthService = (*ManualMockAuthService)(nil)

func validClaims(userID string) *dto.AuthClaims {
	return &dto.AuthClaims{UserID: userID, TokenType: "access"}
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(mockSvc *ManualMockAuthService)
		expectedStatus int
	}{
		{
			name:           "No Auth Header",
			authHeader:     "",
			setupMock:      func(mockSvc *ManualMockAuthService) {},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic abc",
			setupMock:      func(mockSvc *ManualMockAuthService) {},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer bad-token",
			setupMock: func(mockSvc *ManualMockAuthService) {
				mockSvc.ValidateJWTFunc = func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
					return nil, errors.New("invalid jwt token")
				}
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Refresh Token Rejected",
			authHeader: "Bearer refresh-token",
			setupMock: func(mockSvc *ManualMockAuthService) {
				mockSvc.ValidateJWTFunc = func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
					return &dto.AuthClaims{UserID: "user1", TokenType: "refresh"}, nil
				}
			},
			expectedStatus: fiber.StatusForbidden,
		},
		{
			name:       "Valid Token",
			authHeader: "Bearer good-token",
			setupMock: func(mockSvc *ManualMockAuthService) {
				mockSvc.ValidateJWTFunc = func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
					return validClaims("user1"), nil
				}
			},
			expectedStatus: fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &ManualMockAuthService{}
			tt.setupMock(mockSvc)

			app := fiber.New()
			app.Get("/protected", middleware.Protected(mockSvc), func(c *fiber.Ctx) error {
				assert.Equal(t, "user1", c.Locals(middleware.UserIDKey))
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("Anonymous Without Header", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", middleware.OptionalAuth(&ManualMockAuthService{}), func(c *fiber.Ctx) error {
			assert.Nil(t, c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Invalid Token Falls Back To Anonymous", func(t *testing.T) {
		mockSvc := &ManualMockAuthService{ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
			return nil, errors.New("expired")
		}}
		app := fiber.New()
		app.Get("/", middleware.OptionalAuth(mockSvc), func(c *fiber.Ctx) error {
			assert.Nil(t, c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Valid Token Sets UserID", func(t *testing.T) {
		mockSvc := &ManualMockAuthService{ValidateJWTFunc: func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
			return validClaims("user1"), nil
		}}
		app := fiber.New()
		app.Get("/", middleware.OptionalAuth(mockSvc), func(c *fiber.Ctx) error {
			assert.Equal(t, "user1", c.Locals(middleware.UserIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestSessionOwner(t *testing.T) {
	t.Run("Prefers Authenticated UserID", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			c.Locals(middleware.UserIDKey, "user1")
			return c.Next()
		}, middleware.SessionOwner(), func(c *fiber.Ctx) error {
			assert.Equal(t, "user1", c.Locals(middleware.OwnerIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.SessionIDHeader, "anon-abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Falls Back To Session Header", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", middleware.SessionOwner(), func(c *fiber.Ctx) error {
			assert.Equal(t, "anon-abc", c.Locals(middleware.OwnerIDKey))
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.SessionIDHeader, "anon-abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Rejects Ownerless Request", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", middleware.SessionOwner(), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
