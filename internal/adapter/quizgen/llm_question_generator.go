package quizgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"notequiz/internal/domain"
	"notequiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// maxSourceChars caps the amount of document text sent to the LLM.
const maxSourceChars = 24000

// LLM is the subset of the langchaingo client used by the generator.
// *ollama.LLM satisfies it.
type LLM interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// llmQuestionGenerator implements domain.QuestionGenerator by prompting an
// LLM for a JSON array of multiple-choice question records.
type llmQuestionGenerator struct {
	llmClient LLM
	sfGroup   singleflight.Group
}

// NewLLMQuestionGenerator creates a new instance of llmQuestionGenerator.
func NewLLMQuestionGenerator(llm LLM) domain.QuestionGenerator {
	return &llmQuestionGenerator{llmClient: llm}
}

// GenerateQuestions implements domain.QuestionGenerator. Identical concurrent
// requests (same document, same options) are collapsed into one LLM call.
func (g *llmQuestionGenerator) GenerateQuestions(ctx context.Context, sourceText string, opts domain.GenerationOptions) ([]domain.RawQuestion, error) {
	key := strings.Join([]string{hashString(sourceText), opts.Difficulty, strconv.Itoa(opts.QuestionCount)}, ":")

	res, err, _ := g.sfGroup.Do(key, func() (interface{}, error) {
		return g.generate(ctx, sourceText, opts)
	})
	if err != nil {
		return nil, err
	}
	return res.([]domain.RawQuestion), nil
}

func (g *llmQuestionGenerator) generate(ctx context.Context, sourceText string, opts domain.GenerationOptions) ([]domain.RawQuestion, error) {
	l := logger.Get()

	if len(sourceText) > maxSourceChars {
		sourceText = sourceText[:maxSourceChars]
	}

	difficulty := opts.Difficulty
	if difficulty == "mixed" {
		difficulty = "a mix of easy, medium and hard"
	}

	prompt := fmt.Sprintf(`You are an expert quiz author. Create exactly %d multiple-choice questions from the study notes below. Difficulty: %s.

For each question provide the following fields in JSON:
1. "question": the question text.
2. "option_a", "option_b", "option_c", "option_d": four distinct answer options.
3. "correct_answer": the letter of the correct option ("A", "B", "C" or "D").
4. "explanation": one or two sentences explaining the correct answer.

Respond with ONLY a single JSON array containing %d objects. Example for one object:
{
  "question": "What is the capital of France?",
  "option_a": "Paris",
  "option_b": "Lyon",
  "option_c": "Marseille",
  "option_d": "Nice",
  "correct_answer": "A",
  "explanation": "Paris has been the capital of France since 987."
}

Study notes:
%s`, opts.QuestionCount, difficulty, opts.QuestionCount, sourceText)

	rawResponse, err := g.callLLM(ctx, prompt)
	if err != nil {
		return nil, domain.NewGenerationFailedError(err)
	}

	l.Debug("Raw LLM response received", zap.Int("length", len(rawResponse)))

	cleaned := strings.TrimSpace(rawResponse)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}

	jsonStart := strings.Index(cleaned, "[")
	jsonEnd := strings.LastIndex(cleaned, "]")
	if jsonStart == -1 || jsonEnd <= jsonStart {
		l.Error("Could not find a JSON array in LLM response",
			zap.String("cleaned_response", cleaned))
		return nil, domain.NewGenerationFailedError(fmt.Errorf("no JSON array found in LLM response"))
	}

	var records []domain.RawQuestion
	extracted := cleaned[jsonStart : jsonEnd+1]
	if err := json.Unmarshal([]byte(extracted), &records); err != nil {
		l.Error("Failed to unmarshal extracted JSON from LLM response",
			zap.Error(err),
			zap.String("json_string_tried_to_parse", extracted))
		return nil, domain.NewGenerationFailedError(fmt.Errorf("failed to unmarshal JSON from LLM: %w", err))
	}

	questions := make([]domain.RawQuestion, 0, len(records))
	for _, record := range records {
		if !isComplete(record) {
			l.Warn("LLM generated an incomplete question record, skipping", zap.Any("record", record))
			continue
		}
		questions = append(questions, record)
	}

	if len(questions) == 0 {
		return nil, domain.NewGenerationFailedError(fmt.Errorf("LLM returned no usable questions"))
	}

	l.Info("Successfully parsed LLM response",
		zap.Int("num_requested", opts.QuestionCount),
		zap.Int("num_generated", len(questions)))
	return questions, nil
}

func (g *llmQuestionGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	response, err := g.llmClient.Call(ctx, prompt, llms.WithTemperature(0.3))
	if err != nil {
		if err == context.DeadlineExceeded {
			l.Error("LLM request timed out", zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		l.Error("Failed to get response from LLM", zap.Error(err))
		return "", fmt.Errorf("LLM call failed: %w", err)
	}

	return response, nil
}

// isComplete checks that a generated record has everything the quiz flow
// relies on: question text, four options and a valid answer letter.
func isComplete(r domain.RawQuestion) bool {
	if r.Question == "" || r.OptionA == "" || r.OptionB == "" || r.OptionC == "" || r.OptionD == "" {
		return false
	}
	for _, letter := range domain.OptionLetters {
		if r.CorrectAnswer == letter {
			return true
		}
	}
	return false
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
