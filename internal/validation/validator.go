package validation

import (
	"strconv"
	"strings"

	"notequiz/internal/domain"
	"notequiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest validates the document upload form fields.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.NoteSetName) == "" {
		errors = append(errors, domain.NewMissingFieldError("noteSetName"))
	} else if len(req.NoteSetName) > 255 {
		errors = append(errors, domain.NewOutOfRangeError("noteSetName", len(req.NoteSetName), 1, 255))
	}

	if !isAllowedString(req.Difficulty, domain.Difficulties) {
		errors = append(errors, domain.NewInvalidChoiceError("difficulty", req.Difficulty, domain.Difficulties))
	}

	if !isAllowedInt(req.QuestionCount, domain.QuestionCounts) {
		allowed := make([]string, len(domain.QuestionCounts))
		for i, n := range domain.QuestionCounts {
			allowed[i] = strconv.Itoa(n)
		}
		errors = append(errors, domain.NewInvalidChoiceError("questionCount", strconv.Itoa(req.QuestionCount), allowed))
	}

	return errors
}

// ValidateAnswerRequest validates an option selection.
func (v *Validator) ValidateAnswerRequest(req *dto.AnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuestionID < 0 {
		errors = append(errors, domain.NewInvalidFormatError("question_id", strconv.Itoa(req.QuestionID)))
	}

	if strings.TrimSpace(req.Answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if !isAllowedString(req.Answer, domain.OptionLetters) {
		errors = append(errors, domain.NewInvalidChoiceError("answer", req.Answer, domain.OptionLetters))
	}

	return errors
}

func isAllowedString(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func isAllowedInt(value int, allowed []int) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
