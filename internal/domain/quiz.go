package domain

import (
	"math"
	"time"
)

// OptionCount is the number of options every generated question carries.
const OptionCount = 4

// OptionLetters are the canonical answer labels, positionally matching a
// question's options (index 0 -> "A", 1 -> "B", 2 -> "C", 3 -> "D").
var OptionLetters = []string{"A", "B", "C", "D"}

// RawQuestion is the flat-field question record produced by the generation
// service. It is kept verbatim inside a Quiz; the rest of the flow works on
// the normalized Question form.
type RawQuestion struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

// Question is the normalized in-memory representation used by the quiz flow.
// ID is the question's 0-based position in the generated set and is stable
// for the lifetime of the session.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// NoteSet identifies the uploaded study document a quiz was generated from.
type NoteSet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Quiz is the generated quiz held by the session state: the ordered raw
// question records plus the note set they came from. Exactly one Quiz is
// live per session owner; it is replaced wholesale on new generation.
type Quiz struct {
	Questions []RawQuestion `json:"questions"`
	NoteSet   NoteSet       `json:"noteSet"`
}

// QuizResult is the outcome of a completed attempt. It is derived, computed
// fresh on each completion, never stored authoritatively by the flow.
type QuizResult struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
	TimeTaken      int `json:"timeTaken"` // whole seconds
}

// NormalizeQuestions converts raw generated records into the uniform Question
// form, assigning IDs sequentially from 0 in input order. It is total:
// malformed records pass through with whatever fields they carry.
func NormalizeQuestions(raw []RawQuestion) []Question {
	questions := make([]Question, len(raw))
	for i, r := range raw {
		questions[i] = Question{
			ID:            i,
			Text:          r.Question,
			Options:       []string{r.OptionA, r.OptionB, r.OptionC, r.OptionD},
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   r.Explanation,
		}
	}
	return questions
}

// AnswerLedger maps a question ID to the selected option letter. Unanswered
// questions have no entry.
type AnswerLedger map[int]string

// Record sets or overwrites the answer for a question. Last write wins.
func (l AnswerLedger) Record(questionID int, letter string) {
	l[questionID] = letter
}

// Get returns the recorded letter and whether the question was answered.
func (l AnswerLedger) Get(questionID int) (string, bool) {
	letter, ok := l[questionID]
	return letter, ok
}

// Score counts the questions whose recorded answer letter strictly equals the
// correct answer. Unanswered questions never count.
func Score(questions []Question, ledger AnswerLedger) int {
	score := 0
	for _, q := range questions {
		if letter, ok := ledger.Get(q.ID); ok && letter == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// AccuracyPercent returns round(100*score/total) using round-half-up.
// total must be >= 1; a generated quiz always has at least one question.
func AccuracyPercent(score, total int) int {
	return int(math.Round(100 * float64(score) / float64(total)))
}
