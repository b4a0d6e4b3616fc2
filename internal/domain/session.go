package domain

import (
	"context"
	"time"
)

// FlowState is the quiz-taking lifecycle state.
type FlowState string

const (
	StateNoQuiz    FlowState = "no_quiz"
	StateTaking    FlowState = "taking"
	StateCompleted FlowState = "completed"
	StateReviewing FlowState = "reviewing"
)

// QuizSession drives one attempt over a generated quiz: the answer ledger,
// the current-question pointer, the attempt timer and the
// Taking -> Completed -> Reviewing lifecycle. All mutations happen on the
// request goroutine that owns the session; the type itself is not
// goroutine-safe.
type QuizSession struct {
	Quiz      *Quiz        `json:"quiz"`
	Questions []Question   `json:"questions"`
	Answers   AnswerLedger `json:"answers"`
	Current   int          `json:"current"`
	State     FlowState    `json:"state"`
	StartedAt time.Time    `json:"started_at"`
	Result    *QuizResult  `json:"result,omitempty"`

	now func() time.Time
}

// NewQuizSession starts a new attempt over the given quiz. The session enters
// Taking immediately and the attempt timer starts.
func NewQuizSession(quiz *Quiz) *QuizSession {
	s := &QuizSession{
		Quiz:      quiz,
		Questions: NormalizeQuestions(quiz.Questions),
		now:       time.Now,
	}
	s.reset()
	return s
}

// SetClock replaces the session's time source. Used by tests to make the
// elapsed-time computation deterministic.
func (s *QuizSession) SetClock(now func() time.Time) {
	s.now = now
	if s.StartedAt.IsZero() {
		s.StartedAt = now()
	}
}

func (s *QuizSession) clock() time.Time {
	if s.now == nil {
		s.now = time.Now
	}
	return s.now()
}

func (s *QuizSession) reset() {
	s.Answers = make(AnswerLedger)
	s.Current = 0
	s.Result = nil
	s.State = StateTaking
	s.StartedAt = s.clock()
}

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question under the navigation pointer.
func (s *QuizSession) CurrentQuestion() Question {
	return s.Questions[s.Current]
}

// Progress returns the display fraction (pointer+1)/total.
func (s *QuizSession) Progress() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Current+1) / float64(s.Total())
}

// SelectAnswer records the option letter for a question, overwriting any
// earlier choice. The ledger is frozen once the attempt completes.
func (s *QuizSession) SelectAnswer(questionID int, letter string) error {
	if s.State != StateTaking {
		return NewInvalidTransitionError(s.State, "answer")
	}
	if questionID < 0 || questionID >= s.Total() {
		return NewQuestionNotFoundError(questionID)
	}
	s.Answers.Record(questionID, letter)
	return nil
}

// Next advances the pointer by one. On the last question it completes the
// attempt instead, scoring whatever the ledger holds.
func (s *QuizSession) Next() error {
	if s.State != StateTaking {
		return NewInvalidTransitionError(s.State, "advance")
	}
	if s.Current < s.Total()-1 {
		s.Current++
		return nil
	}
	s.complete()
	return nil
}

// Skip advances without recording an answer for the current question. On the
// last question it behaves identically to Next and completes the attempt.
func (s *QuizSession) Skip() error {
	return s.Next()
}

// Previous moves the pointer back by one, clamped at the first question.
func (s *QuizSession) Previous() error {
	if s.State != StateTaking && s.State != StateReviewing {
		return NewInvalidTransitionError(s.State, "go back")
	}
	if s.Current > 0 {
		s.Current--
	}
	return nil
}

// JumpTo sets the pointer to an arbitrary question index. Used both for
// non-linear answering and for review navigation.
func (s *QuizSession) JumpTo(index int) error {
	if s.State != StateTaking && s.State != StateReviewing {
		return NewInvalidTransitionError(s.State, "jump")
	}
	if index < 0 || index >= s.Total() {
		return NewInvalidInputError("question index out of range")
	}
	s.Current = index
	return nil
}

// complete finalizes the attempt: the ledger is frozen, the scoring engine
// runs once and the result is retained for the Completed/Reviewing states.
// An empty ledger scores 0; it is never rejected here.
func (s *QuizSession) complete() {
	elapsed := int(s.clock().Sub(s.StartedAt).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	s.Result = &QuizResult{
		Score:          Score(s.Questions, s.Answers),
		TotalQuestions: s.Total(),
		TimeTaken:      elapsed,
	}
	s.State = StateCompleted
}

// Review switches a completed attempt to the read-only answer review view.
// It mutates neither the ledger nor the result.
func (s *QuizSession) Review() error {
	if s.State != StateCompleted {
		return NewInvalidTransitionError(s.State, "review answers")
	}
	s.State = StateReviewing
	s.Current = 0
	return nil
}

// BackToResults leaves the review view.
func (s *QuizSession) BackToResults() error {
	if s.State != StateReviewing {
		return NewInvalidTransitionError(s.State, "return to results")
	}
	s.State = StateCompleted
	return nil
}

// Retake restarts the attempt over the same questions: empty ledger, result
// discarded, timer origin reset.
func (s *QuizSession) Retake() error {
	if s.State != StateCompleted && s.State != StateReviewing {
		return NewInvalidTransitionError(s.State, "retake")
	}
	s.reset()
	return nil
}

// SessionRepository holds at most one QuizSession per owner. Save replaces
// the held value unconditionally; Get returns (nil, nil) when no session is
// live so callers can render an explicit no-quiz state instead of erroring.
type SessionRepository interface {
	Get(ctx context.Context, ownerID string) (*QuizSession, error)
	Save(ctx context.Context, ownerID string, session *QuizSession) error
	Clear(ctx context.Context, ownerID string) error
}
