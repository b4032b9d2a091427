package quiz

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"quiz-builder/internal/models"
	"quiz-builder/pkg/cache"
)

// ErrNotFound is the first-class absent signal for an unknown quiz id.
var ErrNotFound = errors.New("quiz not found")

type Service struct {
	repo  *Repository
	cache *cache.QuizCache
}

// NewService wires the repository with an optional record cache; pass a nil
// cache to run without one.
func NewService(repo *Repository, quizCache *cache.QuizCache) *Service {
	return &Service{
		repo:  repo,
		cache: quizCache,
	}
}

// CreateQuiz validates and shapes the submission, writes it atomically, and
// returns the persisted record with generated ids and timestamps, questions
// ascending by order.
func (s *Service) CreateQuiz(payload models.CreateQuizPayload) (*models.QuizRecord, error) {
	quiz, err := ValidateAndBuild(payload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateQuiz(&quiz); err != nil {
		return nil, err
	}

	// Reload so the returned record carries store-assigned ordering and
	// timestamps rather than the submission's layout.
	full, err := s.repo.GetQuizByID(quiz.ID)
	if err != nil {
		return nil, err
	}

	record := full.ToRecord()
	if s.cache != nil {
		if err := s.cache.SetQuiz(&record); err != nil {
			log.Printf("Error caching quiz %d: %v", record.ID, err)
		}
	}
	return &record, nil
}

// ListQuizzes returns all quiz summaries newest-first. An empty store yields
// an empty slice, not an error.
func (s *Service) ListQuizzes() ([]models.QuizSummary, error) {
	summaries, err := s.repo.ListQuizzes()
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []models.QuizSummary{}
	}
	return summaries, nil
}

// GetQuizByID returns the full record for id, or ErrNotFound.
func (s *Service) GetQuizByID(id uint) (*models.QuizRecord, error) {
	if s.cache != nil {
		if record, err := s.cache.GetQuiz(id); err == nil {
			return record, nil
		}
	}

	quiz, err := s.repo.GetQuizByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record := quiz.ToRecord()
	if s.cache != nil {
		if err := s.cache.SetQuiz(&record); err != nil {
			log.Printf("Error caching quiz %d: %v", record.ID, err)
		}
	}
	return &record, nil
}

// DeleteQuiz confirms the quiz exists, then removes it and everything it
// owns. A second delete of the same id reports ErrNotFound, which callers
// should treat as a legitimate outcome rather than a transient failure.
func (s *Service) DeleteQuiz(id uint) error {
	// Existence check goes to the store directly so a stale cache entry
	// can never turn a missing quiz into a successful delete.
	if _, err := s.repo.GetQuizByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.DeleteQuiz(id); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateQuiz(id); err != nil {
			log.Printf("Error invalidating cached quiz %d: %v", id, err)
		}
	}
	return nil
}
