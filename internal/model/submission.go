package model

import (
	"time"

	"github.com/google/uuid"
)

// ComparisonResult pairs the rendered inputs of one case with the output
// the submitted program produced and the output the case expected. Only
// Output vs ExpectedOutput determines correctness; Input is display-only.
type ComparisonResult struct {
	Input          string `json:"input"`
	Output         string `json:"output"`
	ExpectedOutput string `json:"expected_output"`
}

// Submission is one graded attempt at a question. Submissions are
// append-only: resubmitting the same question creates a new record.
type Submission struct {
	ID           uuid.UUID          `json:"id"`
	QuestionID   uuid.UUID          `json:"question_id"`
	UserID       int                `json:"user_id"`
	Code         string             `json:"code"`
	Results      []ComparisonResult `json:"results"`
	ScorePercent int                `json:"score_percent"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ExamSubmission is a graded attempt made inside an exam. Stored in its
// own collection so exam grading never mixes with free practice.
type ExamSubmission struct {
	ID           uuid.UUID          `json:"id"`
	QuestionID   uuid.UUID          `json:"question_id"`
	ExamID       uuid.UUID          `json:"exam_id"`
	UserID       int                `json:"user_id"`
	Code         string             `json:"code"`
	Results      []ComparisonResult `json:"results"`
	ScorePercent int                `json:"score_percent"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SubmitRequest is the payload for grading a question submission.
type SubmitRequest struct {
	Code       string `json:"code" binding:"required"`
	QuestionID string `json:"question_id" binding:"required,uuid"`
}

// ExamSubmitRequest is the payload for grading an exam submission.
type ExamSubmitRequest struct {
	Code       string `json:"code" binding:"required"`
	QuestionID string `json:"question_id" binding:"required,uuid"`
	ExamID     string `json:"exam_id" binding:"required,uuid"`
}

// SubmissionEvent is published on the live submission feed whenever an
// exam submission is graded.
type SubmissionEvent struct {
	UserID        int       `json:"user_id"`
	UserName      string    `json:"user_name"`
	Registration  string    `json:"registration"`
	QuestionID    uuid.UUID `json:"question_id"`
	QuestionTitle string    `json:"question_title"`
	ExamID        uuid.UUID `json:"exam_id"`
	ScorePercent  int       `json:"score_percent"`
	SubmittedAt   time.Time `json:"submitted_at"`
}
