package dto

import (
	"time"

	"notequiz/internal/domain"
)

// GenerateQuizRequest carries the form fields of a document upload.
// @Description Options accompanying an uploaded study document
type GenerateQuizRequest struct {
	NoteSetName        string `form:"noteSetName"`
	NoteSetDescription string `form:"noteSetDescription"`
	Difficulty         string `form:"difficulty"`    // easy|medium|hard|mixed
	QuestionCount      int    `form:"questionCount"` // 5|10|15|20
	UserID             string `form:"userId"`
}

// NoteSetResponse identifies the note set a quiz was generated from.
type NoteSetResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GenerateQuizResponse is the upload result handed to the quiz-taking step.
// @Description Generated quiz payload
type GenerateQuizResponse struct {
	Questions []domain.RawQuestion `json:"questions"`
	NoteSet   NoteSetResponse      `json:"noteSet"`
}

// AnswerRequest records an option choice for one question.
// @Description Request body for answering a question
type AnswerRequest struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"` // "A".."D"
}

// JumpRequest moves the navigation pointer to an arbitrary question index.
type JumpRequest struct {
	Index int `json:"index"`
}

// QuestionView is the question shape shown while taking the quiz. It never
// carries the correct answer.
type QuestionView struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Selected string   `json:"selected,omitempty"`
}

// ReviewQuestionView is the question shape shown in the read-only answer
// review: the user's choice next to the correct answer and explanation.
type ReviewQuestionView struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	Selected      string   `json:"selected,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Correct       bool     `json:"correct"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizResultResponse reports a completed attempt.
// @Description Result of a completed quiz attempt
type QuizResultResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Accuracy       int    `json:"accuracy"` // percent, 0..100
	TimeTaken      int    `json:"time_taken"`
	Notice         string `json:"notice,omitempty"` // e.g. attempt persistence failure
}

// SessionView is the state-dependent rendering of the live quiz session.
// @Description Current quiz session state
type SessionView struct {
	State          string               `json:"state"` // no_quiz|taking|completed|reviewing
	Message        string               `json:"message,omitempty"`
	NoteSet        *NoteSetResponse     `json:"note_set,omitempty"`
	TotalQuestions int                  `json:"total_questions,omitempty"`
	Current        int                  `json:"current"`
	Progress       float64              `json:"progress,omitempty"`
	Question       *QuestionView        `json:"question,omitempty"`
	Result         *QuizResultResponse  `json:"result,omitempty"`
	Review         []ReviewQuestionView `json:"review,omitempty"`
}

// AttemptItem represents a single past attempt in a history listing.
type AttemptItem struct {
	AttemptID      string    `json:"attempt_id"`
	NoteSetID      string    `json:"note_set_id"`
	NoteSetName    string    `json:"note_set_name,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Accuracy       int       `json:"accuracy"`
	TimeTaken      int       `json:"time_taken"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// AttemptsResponse is the response for listing past quiz attempts.
type AttemptsResponse struct {
	Attempts       []AttemptItem  `json:"attempts"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems int64 `json:"total_items"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
