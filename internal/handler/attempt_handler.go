package handler

import (
	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/middleware"
	"notequiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler serves a signed-in user's quiz attempt history.
type AttemptHandler struct {
	attempts service.AttemptService
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(attempts service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attempts: attempts}
}

// GetMyAttempts godoc
// @Summary List my quiz attempts
// @Description Returns the authenticated user's past quiz attempts, newest first.
// @Tags attempts
// @Produce json
// @Param limit query int false "Page size (default 10, max 50)"
// @Param offset query int false "Offset into the result set"
// @Success 200 {object} dto.AttemptsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-attempts [get]
func (h *AttemptHandler) GetMyAttempts(c *fiber.Ctx) error {
	uid, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || uid == "" {
		return domain.NewError(domain.ErrUnauthorized, "authentication required", nil)
	}

	var pagination dto.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return domain.NewInvalidInputError("invalid pagination parameters")
	}

	resp, err := h.attempts.GetMyAttempts(c.Context(), uid, pagination)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
