package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/questio/questio-backend/internal/judge"
	"github.com/questio/questio-backend/internal/middleware"
	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/response"
	"github.com/questio/questio-backend/internal/service"
	"github.com/questio/questio-backend/internal/validator"
)

// JudgeHandler handles code execution, grading, and draft endpoints.
type JudgeHandler struct {
	judgeService *service.JudgeService
}

// NewJudgeHandler creates a new JudgeHandler.
func NewJudgeHandler(judgeService *service.JudgeService) *JudgeHandler {
	return &JudgeHandler{judgeService: judgeService}
}

// Execute godoc
// POST /api/v1/execute
// Runs code against expected cases provided in the request body. Used by
// the question editor while authoring cases.
func (h *JudgeHandler) Execute(c *gin.Context) {
	var req model.ExecuteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	results, err := h.judgeService.ExecuteWithCases(c.Request.Context(), req.Code, req.Cases)
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ExecuteQuestion godoc
// POST /api/v1/questions/execute
// Runs code against all cases of a stored question.
func (h *JudgeHandler) ExecuteQuestion(c *gin.Context) {
	var req model.ExecuteQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	results, err := h.judgeService.ExecuteForQuestion(c.Request.Context(), req.Code, questionID)
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ExecuteExamQuestion godoc
// POST /api/v1/exams/questions/execute
// Runs code against only the first case of a question during an exam.
func (h *JudgeHandler) ExecuteExamQuestion(c *gin.Context) {
	var req model.ExecuteQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	results, err := h.judgeService.ExecuteExamPreview(c.Request.Context(), req.Code, questionID)
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// Submit godoc
// POST /api/v1/questions/submit
// Grades a submission against every case and records it.
func (h *JudgeHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	submission, err := h.judgeService.Submit(c.Request.Context(), req.Code, questionID, middleware.GetClaims(c))
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": submission})
}

// SubmitExam godoc
// POST /api/v1/exams/submit
// Grades an exam submission. The response deliberately omits results and
// score: students only learn their exam grade after the exam closes.
func (h *JudgeHandler) SubmitExam(c *gin.Context) {
	var req model.ExamSubmitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	examID, err := uuid.Parse(req.ExamID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	_, err = h.judgeService.SubmitForExam(c.Request.Context(), req.Code, questionID, examID, middleware.GetClaims(c))
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Questão submetida com sucesso"})
}

// SaveDraft godoc
// PUT /api/v1/drafts
// Creates or overwrites the caller's draft for a question.
func (h *JudgeHandler) SaveDraft(c *gin.Context) {
	var req model.SaveDraftRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, err := h.judgeService.SaveDraft(c.Request.Context(), req.Code, questionID, middleware.GetClaims(c))
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// GetDraft godoc
// GET /api/v1/drafts/:question_id
// Returns the caller's saved draft for a question, if any.
func (h *JudgeHandler) GetDraft(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("question_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	draft, err := h.judgeService.GetDraft(c.Request.Context(), questionID, middleware.GetClaims(c))
	if err != nil {
		failJudge(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}

// ListSubmissions godoc
// GET /api/v1/submissions
// Returns the caller's practice submission history, newest first.
func (h *JudgeHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.judgeService.ListSubmissions(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		failJudge(c, err)
		return
	}

	if submissions == nil {
		submissions = []model.Submission{}
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": submissions})
}

// failJudge maps grading errors onto the API error taxonomy.
func failJudge(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
	case errors.Is(err, service.ErrQuestionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
	case errors.Is(err, service.ErrDraftNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, judge.ErrEmptyCaseSet):
		response.Fail(c, http.StatusBadRequest, response.ErrEmptyCaseSet)
	case errors.Is(err, judge.ErrNoCasesAvailable):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoCasesAvailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
