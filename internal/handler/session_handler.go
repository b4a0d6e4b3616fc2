package handler

import (
	"errors"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/middleware"
	"notequiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes the quiz session lifecycle over HTTP. Every route
// runs behind middleware.SessionOwner, so the owner key is always present.
type SessionHandler struct {
	sessions    service.SessionService
	resultCache service.ResultCacheService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService, resultCache service.ResultCacheService) *SessionHandler {
	return &SessionHandler{sessions: sessions, resultCache: resultCache}
}

func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.OwnerIDKey).(string)
	return id
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.UserIDKey).(string)
	return id
}

// GetSession godoc
// @Summary Get the current quiz session
// @Description Returns the state-dependent view of the caller's quiz session. With no live session the response carries the explicit no_quiz state.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /quiz/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	view, err := h.sessions.GetSession(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// SelectAnswer godoc
// @Summary Answer a question
// @Description Records an option letter for a question. Re-answering overwrites the earlier choice.
// @Tags session
// @Accept json
// @Produce json
// @Param answer body dto.AnswerRequest true "Question ID and option letter"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "No active quiz or unknown question"
// @Router /quiz/session/answer [post]
func (h *SessionHandler) SelectAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("failed to parse answer request")
	}
	view, err := h.sessions.SelectAnswer(c.Context(), ownerID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Next godoc
// @Summary Advance to the next question
// @Description Moves forward one question. On the last question the attempt completes and the scored result is returned.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Not taking a quiz"
// @Router /quiz/session/next [post]
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	view, err := h.sessions.Advance(c.Context(), ownerID(c), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Skip godoc
// @Summary Skip the current question
// @Description Advances without recording an answer. On the last question the attempt completes; skipped questions score as incorrect.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /quiz/session/skip [post]
func (h *SessionHandler) Skip(c *fiber.Ctx) error {
	view, err := h.sessions.Skip(c.Context(), ownerID(c), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Previous godoc
// @Summary Go back one question
// @Description Moves the pointer back by one, staying at the first question if already there.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /quiz/session/previous [post]
func (h *SessionHandler) Previous(c *fiber.Ctx) error {
	view, err := h.sessions.Previous(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// GoTo godoc
// @Summary Jump to a question
// @Description Moves the pointer straight to a question index for non-linear answering or review navigation.
// @Tags session
// @Accept json
// @Produce json
// @Param jump body dto.JumpRequest true "0-based question index"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse "Index out of range"
// @Router /quiz/session/goto [post]
func (h *SessionHandler) GoTo(c *fiber.Ctx) error {
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("failed to parse jump request")
	}
	view, err := h.sessions.GoTo(c.Context(), ownerID(c), req.Index)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Review godoc
// @Summary Review answers
// @Description Switches a completed attempt to the read-only answer review, exposing correct answers and explanations.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Failure 409 {object} middleware.ErrorResponse "Attempt not completed"
// @Router /quiz/session/review [post]
func (h *SessionHandler) Review(c *fiber.Ctx) error {
	view, err := h.sessions.Review(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// BackToResults godoc
// @Summary Return from review to the result summary
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /quiz/session/back [post]
func (h *SessionHandler) BackToResults(c *fiber.Ctx) error {
	view, err := h.sessions.BackToResults(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// Retake godoc
// @Summary Retake the quiz
// @Description Restarts the attempt over the same questions with an empty answer ledger and a fresh timer.
// @Tags session
// @Produce json
// @Success 200 {object} dto.SessionView
// @Router /quiz/session/retake [post]
func (h *SessionHandler) Retake(c *fiber.Ctx) error {
	view, err := h.sessions.Retake(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// ExitQuiz godoc
// @Summary Exit the quiz
// @Description Discards the caller's quiz session. Exiting with no session is a no-op.
// @Tags session
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /quiz/session [delete]
func (h *SessionHandler) ExitQuiz(c *fiber.Ctx) error {
	if err := h.sessions.ExitQuiz(c.Context(), ownerID(c)); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "quiz session cleared"})
}

// GetLastResult godoc
// @Summary Get the last completed result
// @Description Returns the live session's result when completed, falling back to the cached result for anonymous owners whose session expired.
// @Tags session
// @Produce json
// @Success 200 {object} dto.QuizResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/result [get]
func (h *SessionHandler) GetLastResult(c *fiber.Ctx) error {
	view, err := h.sessions.GetSession(c.Context(), ownerID(c))
	if err != nil {
		return err
	}
	if view.Result != nil {
		return c.JSON(view.Result)
	}

	if h.resultCache != nil {
		cached, err := h.resultCache.Get(c.Context(), ownerID(c))
		if err == nil {
			return c.JSON(cached)
		}
		if !errors.Is(err, service.ErrResultNotFound) {
			return err
		}
	}
	return domain.NewNotFoundError("no completed quiz result for this session")
}
