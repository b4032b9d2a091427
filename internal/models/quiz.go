package models

import (
	"time"
)

// QuestionType selects which fields of a Question are meaningful.
type QuestionType string

const (
	QuestionTypeBoolean  QuestionType = "BOOLEAN"
	QuestionTypeInput    QuestionType = "INPUT"
	QuestionTypeCheckbox QuestionType = "CHECKBOX"
)

// Valid reports whether t is one of the three known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeBoolean, QuestionTypeInput, QuestionTypeCheckbox:
		return true
	}
	return false
}

type Quiz struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Title     string     `json:"title" gorm:"not null"`
	CreatedAt time.Time  `json:"createdAt"`
	Questions []Question `json:"questions" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	QuizID       uint         `json:"quizId" gorm:"not null;index"`
	QuestionText string       `json:"questionText" gorm:"not null"`
	QuestionType QuestionType `json:"questionType" gorm:"not null"`
	// Position is the zero-based slot among sibling questions. Serialized
	// as "order" on the wire; stored as "position" to dodge the SQL keyword.
	Position      int       `json:"order" gorm:"column:position;not null"`
	CorrectAnswer *string   `json:"correctAnswer,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Answers       []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type Answer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"questionId" gorm:"not null;index"`
	AnswerText string    `json:"answerText" gorm:"not null"`
	IsCorrect  bool      `json:"isCorrect" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}
