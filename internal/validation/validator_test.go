package validation

import (
	"strings"
	"testing"

	"notequiz/internal/dto"

	"github.com/stretchr/testify/assert"
)

func validGenerateRequest() *dto.GenerateQuizRequest {
	return &dto.GenerateQuizRequest{
		NoteSetName:   "Biology Chapter 3",
		Difficulty:    "medium",
		QuestionCount: 10,
	}
}

func TestValidateGenerateQuizRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		errs := v.ValidateGenerateQuizRequest(validGenerateRequest())
		assert.Empty(t, errs)
	})

	t.Run("MissingNoteSetName", func(t *testing.T) {
		req := validGenerateRequest()
		req.NoteSetName = "   "
		errs := v.ValidateGenerateQuizRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "noteSetName", errs[0].Field)
	})

	t.Run("NoteSetNameTooLong", func(t *testing.T) {
		req := validGenerateRequest()
		req.NoteSetName = strings.Repeat("x", 256)
		errs := v.ValidateGenerateQuizRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "noteSetName", errs[0].Field)
	})

	t.Run("InvalidDifficulty", func(t *testing.T) {
		req := validGenerateRequest()
		req.Difficulty = "brutal"
		errs := v.ValidateGenerateQuizRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "difficulty", errs[0].Field)
	})

	t.Run("InvalidQuestionCount", func(t *testing.T) {
		req := validGenerateRequest()
		req.QuestionCount = 7
		errs := v.ValidateGenerateQuizRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "questionCount", errs[0].Field)
	})

	t.Run("MultipleErrorsAccumulate", func(t *testing.T) {
		req := &dto.GenerateQuizRequest{NoteSetName: "", Difficulty: "nope", QuestionCount: 0}
		errs := v.ValidateGenerateQuizRequest(req)
		assert.Len(t, errs, 3)
	})
}

func TestValidateAnswerRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid", func(t *testing.T) {
		errs := v.ValidateAnswerRequest(&dto.AnswerRequest{QuestionID: 0, Answer: "B"})
		assert.Empty(t, errs)
	})

	t.Run("NegativeQuestionID", func(t *testing.T) {
		errs := v.ValidateAnswerRequest(&dto.AnswerRequest{QuestionID: -1, Answer: "A"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "question_id", errs[0].Field)
	})

	t.Run("MissingAnswer", func(t *testing.T) {
		errs := v.ValidateAnswerRequest(&dto.AnswerRequest{QuestionID: 1, Answer: " "})
		assert.Len(t, errs, 1)
		assert.Equal(t, "answer", errs[0].Field)
	})

	t.Run("LowercaseLetterRejected", func(t *testing.T) {
		errs := v.ValidateAnswerRequest(&dto.AnswerRequest{QuestionID: 1, Answer: "b"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "answer", errs[0].Field)
	})

	t.Run("OutOfRangeLetterRejected", func(t *testing.T) {
		errs := v.ValidateAnswerRequest(&dto.AnswerRequest{QuestionID: 1, Answer: "E"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "answer", errs[0].Field)
	})
}
