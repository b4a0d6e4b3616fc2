package domain

import "context"

// Allowed generation parameters. The upload flow only ever offers these.
var (
	Difficulties   = []string{"easy", "medium", "hard", "mixed"}
	QuestionCounts = []int{5, 10, 15, 20}
)

// GenerationOptions carry the user's choices for a document upload.
type GenerationOptions struct {
	Difficulty    string
	QuestionCount int
}

// QuestionGenerator produces multiple-choice question records from the text
// of an uploaded study document. Implementations live in internal/adapter.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, sourceText string, opts GenerationOptions) ([]RawQuestion, error)
}

// NoteSetRepository persists the note sets quizzes are generated from.
type NoteSetRepository interface {
	CreateNoteSet(ctx context.Context, noteSet *NoteSet) error
	GetNoteSetByID(ctx context.Context, id string) (*NoteSet, error)
}
