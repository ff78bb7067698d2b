package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/repository"
)

// QuestionService exposes the read-only question catalog.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// GetByID retrieves one question.
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions retrieves every question.
func (s *QuestionService) ListQuestions(ctx context.Context) ([]model.Question, error) {
	return s.questionRepo.ListAll(ctx)
}

// ListTags retrieves the distinct tags across all questions.
func (s *QuestionService) ListTags(ctx context.Context) ([]string, error) {
	return s.questionRepo.ListDistinctTags(ctx)
}
