package handler

import (
	"io"
	"path/filepath"
	"strings"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
	"notequiz/internal/logger"
	"notequiz/internal/middleware"
	"notequiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// documentFieldName is the multipart field carrying the study document.
const documentFieldName = "document"

var allowedDocumentExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// QuizHandler handles quiz generation requests.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ProcessDocument godoc
// @Summary Generate a quiz from an uploaded document
// @Description Accepts a study document (.txt or .md) plus generation options, produces a multiple-choice quiz and starts a fresh session for the caller. Any previous session is replaced.
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Study document (.txt or .md)"
// @Param noteSetName formData string true "Name for the note set"
// @Param noteSetDescription formData string false "Optional description"
// @Param difficulty formData string true "easy, medium, hard or mixed"
// @Param questionCount formData int true "5, 10, 15 or 20"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse "Generation failed"
// @Router /process-document [post]
func (h *QuizHandler) ProcessDocument(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("failed to parse form fields")
	}

	sourceText, err := readDocument(c)
	if err != nil {
		return err
	}

	ownerID, _ := c.Locals(middleware.OwnerIDKey).(string)
	userID, _ := c.Locals(middleware.UserIDKey).(string)

	resp, err := h.quizService.GenerateQuiz(c.Context(), ownerID, userID, sourceText, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func readDocument(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile(documentFieldName)
	if err != nil {
		return "", domain.NewInvalidInputError("document file is missing")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedDocumentExtensions[ext] {
		return "", domain.NewInvalidInputError("only .txt and .md documents are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Get().Error("Failed to open uploaded document",
			zap.Error(err), zap.String("filename", fileHeader.Filename))
		return "", domain.NewInternalError("failed to open uploaded document", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", domain.NewInternalError("failed to read uploaded document", err)
	}
	return string(content), nil
}
