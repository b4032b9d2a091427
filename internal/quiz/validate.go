package quiz

import (
	"strings"

	"quiz-builder/internal/models"
)

// ValidationError is a business-rule violation in a quiz submission. The
// handler layer turns these into 400s with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrTitleTooShort   = &ValidationError{Message: "quiz title must be at least 3 characters"}
	ErrNoQuestions     = &ValidationError{Message: "quiz must have at least 1 question"}
	ErrEmptyQuestion   = &ValidationError{Message: "question text is required"}
	ErrInvalidType     = &ValidationError{Message: "invalid question type"}
	ErrTooFewOptions   = &ValidationError{Message: "checkbox questions must have at least 3 answer options"}
	ErrNoCorrectAnswer = &ValidationError{Message: "checkbox questions must have at least 1 correct answer"}
	ErrBlankOption     = &ValidationError{Message: "all answer options must have text"}
)

// Validate checks a quiz submission against the authoring rules. Trimming is
// check-only; the submitted values are never mutated. BOOLEAN and INPUT
// questions skip the answer-option rules even when an answers list is
// present, since shaping drops it anyway.
func Validate(payload models.CreateQuizPayload) error {
	if len(strings.TrimSpace(payload.Title)) < 3 {
		return ErrTitleTooShort
	}
	if len(payload.Questions) == 0 {
		return ErrNoQuestions
	}

	for _, q := range payload.Questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return ErrEmptyQuestion
		}
		if !q.QuestionType.Valid() {
			return ErrInvalidType
		}
		if q.QuestionType != models.QuestionTypeCheckbox {
			continue
		}

		if len(q.Answers) < 3 {
			return ErrTooFewOptions
		}
		anyCorrect := false
		for _, a := range q.Answers {
			if a.IsCorrect {
				anyCorrect = true
			}
		}
		if !anyCorrect {
			return ErrNoCorrectAnswer
		}
		for _, a := range q.Answers {
			if strings.TrimSpace(a.AnswerText) == "" {
				return ErrBlankOption
			}
		}
	}
	return nil
}

// Build shapes a submission into entities ready for the transactional
// insert. Submitted order values are preserved verbatim. correctAnswer is
// kept only for BOOLEAN/INPUT questions; an answers list is kept only for
// CHECKBOX questions.
func Build(payload models.CreateQuizPayload) models.Quiz {
	quiz := models.Quiz{
		Title:     payload.Title,
		Questions: make([]models.Question, len(payload.Questions)),
	}
	for i, q := range payload.Questions {
		question := models.Question{
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Position:     q.Order,
		}
		if q.QuestionType == models.QuestionTypeCheckbox {
			question.Answers = make([]models.Answer, len(q.Answers))
			for j, a := range q.Answers {
				question.Answers[j] = models.Answer{
					AnswerText: a.AnswerText,
					IsCorrect:  a.IsCorrect,
				}
			}
		} else {
			question.CorrectAnswer = q.CorrectAnswer
		}
		quiz.Questions[i] = question
	}
	return quiz
}

// ValidateAndBuild runs Validate then Build in one step.
func ValidateAndBuild(payload models.CreateQuizPayload) (models.Quiz, error) {
	if err := Validate(payload); err != nil {
		return models.Quiz{}, err
	}
	return Build(payload), nil
}
