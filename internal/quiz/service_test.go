package quiz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quiz-builder/internal/models"
)

// newTestService opens a per-test in-memory SQLite store with foreign keys
// enforced, so cascade deletes behave as they do on Postgres.
func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Quiz{}, &models.Question{}, &models.Answer{}); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	return NewService(NewRepository(db), nil), db
}

func geoQuizPayload() models.CreateQuizPayload {
	return models.CreateQuizPayload{
		Title: "Geo Quiz",
		Questions: []models.QuestionPayload{
			{
				QuestionText:  "Capital of France?",
				QuestionType:  models.QuestionTypeInput,
				Order:         0,
				CorrectAnswer: strPtr("Paris"),
			},
			{
				QuestionText: "Pick fruits",
				QuestionType: models.QuestionTypeCheckbox,
				Order:        1,
				Answers: []models.AnswerPayload{
					{AnswerText: "Apple", IsCorrect: true},
					{AnswerText: "Carrot", IsCorrect: false},
					{AnswerText: "Banana", IsCorrect: true},
				},
			},
		},
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	payload := geoQuizPayload()
	// Submit questions out of order; the record must come back sorted.
	payload.Questions[0], payload.Questions[1] = payload.Questions[1], payload.Questions[0]

	created, err := svc.CreateQuiz(payload)
	if err != nil {
		t.Fatalf("CreateQuiz() = %v", err)
	}

	if created.ID == 0 {
		t.Error("quiz id not assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("quiz createdAt not assigned")
	}
	if len(created.Questions) != 2 {
		t.Fatalf("created quiz has %d questions, want 2", len(created.Questions))
	}
	if created.Questions[0].Order != 0 || created.Questions[1].Order != 1 {
		t.Errorf("questions not sorted ascending by order: %d, %d",
			created.Questions[0].Order, created.Questions[1].Order)
	}

	fetched, err := svc.GetQuizByID(created.ID)
	if err != nil {
		t.Fatalf("GetQuizByID() = %v", err)
	}

	input := fetched.Questions[0]
	if input.QuestionType != models.QuestionTypeInput {
		t.Fatalf("first question type = %s, want INPUT", input.QuestionType)
	}
	if input.ID == 0 || input.CreatedAt.IsZero() {
		t.Error("question id/createdAt not assigned")
	}
	if input.CorrectAnswer == nil || *input.CorrectAnswer != "Paris" {
		t.Errorf("INPUT correctAnswer = %v, want Paris", input.CorrectAnswer)
	}
	if len(input.Answers) != 0 {
		t.Errorf("INPUT question persisted %d answers, want none", len(input.Answers))
	}

	checkbox := fetched.Questions[1]
	if checkbox.CorrectAnswer != nil {
		t.Errorf("CHECKBOX correctAnswer = %q, want none", *checkbox.CorrectAnswer)
	}
	wantAnswers := []struct {
		text    string
		correct bool
	}{
		{"Apple", true},
		{"Carrot", false},
		{"Banana", true},
	}
	if len(checkbox.Answers) != len(wantAnswers) {
		t.Fatalf("CHECKBOX has %d answers, want %d", len(checkbox.Answers), len(wantAnswers))
	}
	for i, want := range wantAnswers {
		got := checkbox.Answers[i]
		if got.ID == 0 {
			t.Errorf("answer %d id not assigned", i)
		}
		if got.AnswerText != want.text || got.IsCorrect != want.correct {
			t.Errorf("answer %d = %q/%v, want %q/%v",
				i, got.AnswerText, got.IsCorrect, want.text, want.correct)
		}
	}
}

func TestCreateRejectsInvalidSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	payload := geoQuizPayload()
	payload.Title = "ab"

	_, err := svc.CreateQuiz(payload)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateQuiz() = %v, want a ValidationError", err)
	}

	// Nothing may have been written.
	summaries, err := svc.ListQuizzes()
	if err != nil {
		t.Fatalf("ListQuizzes() = %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("store has %d quizzes after a rejected create", len(summaries))
	}
}

func TestListSummaries(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateQuiz(geoQuizPayload())
	if err != nil {
		t.Fatalf("CreateQuiz() = %v", err)
	}

	second := geoQuizPayload()
	second.Title = "Fruit Quiz"
	second.Questions = second.Questions[:1]
	latest, err := svc.CreateQuiz(second)
	if err != nil {
		t.Fatalf("CreateQuiz() = %v", err)
	}

	summaries, err := svc.ListQuizzes()
	if err != nil {
		t.Fatalf("ListQuizzes() = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	// Newest first.
	if summaries[0].ID != latest.ID || summaries[1].ID != first.ID {
		t.Errorf("summaries out of order: %d, %d", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].Title != "Fruit Quiz" {
		t.Errorf("summary title = %q", summaries[0].Title)
	}
	if summaries[0].QuestionCount != 1 || summaries[1].QuestionCount != 2 {
		t.Errorf("question counts = %d, %d; want 1, 2",
			summaries[0].QuestionCount, summaries[1].QuestionCount)
	}
	if summaries[0].CreatedAt.IsZero() {
		t.Error("summary createdAt not set")
	}
}

func TestListEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	summaries, err := svc.ListQuizzes()
	if err != nil {
		t.Fatalf("ListQuizzes() = %v", err)
	}
	if summaries == nil {
		t.Fatal("empty store returned nil instead of an empty slice")
	}
	if len(summaries) != 0 {
		t.Fatalf("empty store returned %d summaries", len(summaries))
	}
}

func TestGetUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.GetQuizByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetQuizByID(42) = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesAndIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)

	created, err := svc.CreateQuiz(geoQuizPayload())
	if err != nil {
		t.Fatalf("CreateQuiz() = %v", err)
	}

	if err := svc.DeleteQuiz(created.ID); err != nil {
		t.Fatalf("DeleteQuiz() = %v", err)
	}

	if _, err := svc.GetQuizByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetQuizByID after delete = %v, want ErrNotFound", err)
	}

	// The cascade must have removed the owned rows, not just the parent.
	var questions, answers int64
	db.Model(&models.Question{}).Count(&questions)
	db.Model(&models.Answer{}).Count(&answers)
	if questions != 0 || answers != 0 {
		t.Errorf("cascade left %d questions, %d answers", questions, answers)
	}

	// Second delete is a legitimate not-found, not an error class of its own.
	if err := svc.DeleteQuiz(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteQuiz() = %v, want ErrNotFound", err)
	}
}
