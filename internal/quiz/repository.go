package quiz

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quiz-builder/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateQuiz inserts the quiz and everything it owns in one transaction:
// parent row first, then each question referencing the quiz id, then the
// answer rows referencing their question id. Any failure rolls the whole
// write back. Generated ids are filled into quiz as rows are inserted.
func (r *Repository) CreateQuiz(quiz *models.Quiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(quiz).Error; err != nil {
			return err
		}
		for i := range quiz.Questions {
			question := &quiz.Questions[i]
			question.QuizID = quiz.ID
			if err := tx.Omit(clause.Associations).Create(question).Error; err != nil {
				return err
			}
			for j := range question.Answers {
				answer := &question.Answers[j]
				answer.QuestionID = question.ID
				if err := tx.Create(answer).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		return err
	}
	return nil
}

// GetQuizByID loads the full record: questions ascending by position, each
// question's answers in insertion order. Returns gorm.ErrRecordNotFound for
// a missing id; the service translates that into its not-found signal.
func (r *Repository) GetQuizByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// ListQuizzes returns summaries newest-first with a question count per quiz,
// in a single grouped query. Id breaks ties between equal timestamps.
func (r *Repository) ListQuizzes() ([]models.QuizSummary, error) {
	var summaries []models.QuizSummary
	err := r.db.Model(&models.Quiz{}).
		Select("quizzes.id, quizzes.title, quizzes.created_at, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Group("quizzes.id").
		Order("quizzes.created_at DESC, quizzes.id DESC").
		Scan(&summaries).Error
	if err != nil {
		log.Printf("Error listing quizzes: %v", err)
		return nil, err
	}
	return summaries, nil
}

// DeleteQuiz removes the quiz row; questions and answers go with it via the
// ON DELETE CASCADE constraints.
func (r *Repository) DeleteQuiz(id uint) error {
	if err := r.db.Delete(&models.Quiz{}, id).Error; err != nil {
		log.Printf("Error deleting quiz %d: %v", id, err)
		return err
	}
	return nil
}
