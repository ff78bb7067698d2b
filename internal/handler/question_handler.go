package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/response"
	"github.com/questio/questio-backend/internal/service"
)

// QuestionHandler handles the read-only question catalog endpoints.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions godoc
// GET /api/v1/questions
// Lists every question with its cases.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.questionService.ListQuestions(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}

	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// ListTags godoc
// GET /api/v1/tags
// Lists the distinct tags across all questions.
func (h *QuestionHandler) ListTags(c *gin.Context) {
	tags, err := h.questionService.ListTags(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if tags == nil {
		tags = []string{}
	}

	response.Success(c, http.StatusOK, gin.H{"tags": tags})
}
