package models

import "time"

// Wire shapes. Payloads come in on create; records and summaries go out.
// Kept separate from the GORM entities so the persisted layout can move
// without touching the API contract.

type AnswerPayload struct {
	AnswerText string `json:"answerText"`
	IsCorrect  bool   `json:"isCorrect"`
}

type QuestionPayload struct {
	QuestionText  string          `json:"questionText"`
	QuestionType  QuestionType    `json:"questionType"`
	Order         int             `json:"order"`
	CorrectAnswer *string         `json:"correctAnswer,omitempty"`
	Answers       []AnswerPayload `json:"answers,omitempty"`
}

type CreateQuizPayload struct {
	Title     string            `json:"title"`
	Questions []QuestionPayload `json:"questions"`
}

type AnswerRecord struct {
	ID         uint      `json:"id"`
	AnswerText string    `json:"answerText"`
	IsCorrect  bool      `json:"isCorrect"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuestionRecord struct {
	ID            uint           `json:"id"`
	QuestionText  string         `json:"questionText"`
	QuestionType  QuestionType   `json:"questionType"`
	Order         int            `json:"order"`
	CorrectAnswer *string        `json:"correctAnswer,omitempty"`
	Answers       []AnswerRecord `json:"answers,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type QuizRecord struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"createdAt"`
	Questions []QuestionRecord `json:"questions"`
}

type QuizSummary struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a Answer) ToRecord() AnswerRecord {
	return AnswerRecord{
		ID:         a.ID,
		AnswerText: a.AnswerText,
		IsCorrect:  a.IsCorrect,
		CreatedAt:  a.CreatedAt,
	}
}

func (q Question) ToRecord() QuestionRecord {
	rec := QuestionRecord{
		ID:            q.ID,
		QuestionText:  q.QuestionText,
		QuestionType:  q.QuestionType,
		Order:         q.Position,
		CorrectAnswer: q.CorrectAnswer,
		CreatedAt:     q.CreatedAt,
	}
	if len(q.Answers) > 0 {
		rec.Answers = make([]AnswerRecord, len(q.Answers))
		for i, a := range q.Answers {
			rec.Answers[i] = a.ToRecord()
		}
	}
	return rec
}

func (q Quiz) ToRecord() QuizRecord {
	questions := make([]QuestionRecord, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = question.ToRecord()
	}
	return QuizRecord{
		ID:        q.ID,
		Title:     q.Title,
		CreatedAt: q.CreatedAt,
		Questions: questions,
	}
}
