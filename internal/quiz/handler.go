package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"quiz-builder/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/quizzes", h.CreateQuiz).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quizzes", h.ListQuizzes).Methods("GET")
	router.HandleFunc("/api/quizzes/{id}", h.GetQuiz).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/quizzes/{id}", h.DeleteQuiz).Methods("DELETE", "OPTIONS")
	router.HandleFunc("/health", h.Health).Methods("GET")
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateQuizPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Shape check before any business rules run.
	if payload.Title == "" || len(payload.Questions) == 0 {
		respondError(w, http.StatusBadRequest, "Title and at least one question are required")
		return
	}

	record, err := h.service.CreateQuiz(payload)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Message)
			return
		}
		log.Printf("Error creating quiz: %v", err)
		// Create keeps the original contract: every failure is a 400.
		respondError(w, http.StatusBadRequest, "Failed to create quiz")
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListQuizzes()
	if err != nil {
		log.Printf("Error listing quizzes: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch quizzes")
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := quizID(w, r)
	if !ok {
		return
	}

	record, err := h.service.GetQuizByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		log.Printf("Error fetching quiz %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch quiz")
		return
	}

	respondJSON(w, http.StatusOK, record)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := quizID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteQuiz(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		log.Printf("Error deleting quiz %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete quiz")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// quizID parses the {id} path variable, writing the 400 itself when the
// value is not a number.
func quizID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid quiz id")
		return 0, false
	}
	return uint(id), true
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
