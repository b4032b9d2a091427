// Package form holds the quiz-authoring draft: the in-memory state a client
// edits before submitting a quiz. Questions carry a session-local key for
// stable identity across edits; the persisted id does not exist yet.
package form

import (
	"github.com/google/uuid"

	"quiz-builder/internal/models"
	"quiz-builder/internal/quiz"
	"quiz-builder/pkg/client"
)

// minCheckboxOptions is the floor below which the remove-option control is
// not offered.
const minCheckboxOptions = 3

type AnswerDraft struct {
	AnswerText string
	IsCorrect  bool
}

type QuestionDraft struct {
	Key           string
	QuestionText  string
	QuestionType  models.QuestionType
	Order         int
	CorrectAnswer string
	Answers       []AnswerDraft
}

type Draft struct {
	Title     string
	Questions []QuestionDraft
}

func newBooleanQuestion(order int) QuestionDraft {
	return QuestionDraft{
		Key:           uuid.NewString(),
		QuestionType:  models.QuestionTypeBoolean,
		Order:         order,
		CorrectAnswer: "true",
	}
}

// NewDraft starts an empty title with one defaulted BOOLEAN question.
func NewDraft() *Draft {
	return &Draft{
		Questions: []QuestionDraft{newBooleanQuestion(0)},
	}
}

func (d *Draft) find(key string) *QuestionDraft {
	for i := range d.Questions {
		if d.Questions[i].Key == key {
			return &d.Questions[i]
		}
	}
	return nil
}

// AddQuestion appends a defaulted BOOLEAN question and returns its key.
func (d *Draft) AddQuestion() string {
	q := newBooleanQuestion(len(d.Questions))
	d.Questions = append(d.Questions, q)
	return q.Key
}

// RemoveQuestion drops the question with the given key and renumbers the
// remaining orders so they stay dense and zero-based.
func (d *Draft) RemoveQuestion(key string) {
	kept := d.Questions[:0]
	for _, q := range d.Questions {
		if q.Key != key {
			kept = append(kept, q)
		}
	}
	for i := range kept {
		kept[i].Order = i
	}
	d.Questions = kept
}

func (d *Draft) SetQuestionText(key, text string) {
	if q := d.find(key); q != nil {
		q.QuestionText = text
	}
}

// SetQuestionType switches a question's type and re-initializes the fields
// that type owns: BOOLEAN defaults to a "true" answer, INPUT to an empty
// one, CHECKBOX to three blank unchecked options.
func (d *Draft) SetQuestionType(key string, questionType models.QuestionType) {
	q := d.find(key)
	if q == nil {
		return
	}

	q.QuestionType = questionType
	switch questionType {
	case models.QuestionTypeBoolean:
		q.CorrectAnswer = "true"
		q.Answers = nil
	case models.QuestionTypeInput:
		q.CorrectAnswer = ""
		q.Answers = nil
	case models.QuestionTypeCheckbox:
		q.CorrectAnswer = ""
		q.Answers = make([]AnswerDraft, minCheckboxOptions)
	}
}

func (d *Draft) SetCorrectAnswer(key, value string) {
	if q := d.find(key); q != nil {
		q.CorrectAnswer = value
	}
}

// AddAnswer appends a blank unchecked option to a question.
func (d *Draft) AddAnswer(key string) {
	if q := d.find(key); q != nil {
		q.Answers = append(q.Answers, AnswerDraft{})
	}
}

// CanRemoveAnswer reports whether the question is above the option floor;
// the UI hides the remove control when this is false.
func (d *Draft) CanRemoveAnswer(key string) bool {
	q := d.find(key)
	return q != nil && len(q.Answers) > minCheckboxOptions
}

// RemoveAnswer drops one option, refusing to go below the floor.
func (d *Draft) RemoveAnswer(key string, index int) bool {
	q := d.find(key)
	if q == nil || index < 0 || index >= len(q.Answers) {
		return false
	}
	if len(q.Answers) <= minCheckboxOptions {
		return false
	}
	q.Answers = append(q.Answers[:index], q.Answers[index+1:]...)
	return true
}

func (d *Draft) UpdateAnswerText(key string, index int, text string) {
	q := d.find(key)
	if q == nil || index < 0 || index >= len(q.Answers) {
		return
	}
	q.Answers[index].AnswerText = text
}

func (d *Draft) SetAnswerCorrect(key string, index int, correct bool) {
	q := d.find(key)
	if q == nil || index < 0 || index >= len(q.Answers) {
		return
	}
	q.Answers[index].IsCorrect = correct
}

// Payload shapes the draft for submission: answers travel only for CHECKBOX
// questions, correctAnswer only for the other two types.
func (d *Draft) Payload() models.CreateQuizPayload {
	payload := models.CreateQuizPayload{
		Title:     d.Title,
		Questions: make([]models.QuestionPayload, len(d.Questions)),
	}
	for i, q := range d.Questions {
		qp := models.QuestionPayload{
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Order:        q.Order,
		}
		if q.QuestionType == models.QuestionTypeCheckbox {
			qp.Answers = make([]models.AnswerPayload, len(q.Answers))
			for j, a := range q.Answers {
				qp.Answers[j] = models.AnswerPayload{
					AnswerText: a.AnswerText,
					IsCorrect:  a.IsCorrect,
				}
			}
		} else {
			correct := q.CorrectAnswer
			qp.CorrectAnswer = &correct
		}
		payload.Questions[i] = qp
	}
	return payload
}

// Validate runs the same rules the server applies on create.
func (d *Draft) Validate() error {
	return quiz.Validate(d.Payload())
}

// Reset puts the draft back to its initial state: empty title, one fresh
// BOOLEAN question.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// Submit validates the draft client-side, posts it, and resets on success.
// On any failure the draft is left untouched for correction and the error
// is returned for display.
func (d *Draft) Submit(api *client.Client) (*models.QuizRecord, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	record, err := api.CreateQuiz(d.Payload())
	if err != nil {
		return nil, err
	}

	d.Reset()
	return record, nil
}
