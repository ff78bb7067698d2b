package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpectedCase is one (inputs, expected output) pair attached to a question.
// Inputs are the ordered tokens fed to the submitted program; Output is the
// exact text the program must print for the case to count as correct.
type ExpectedCase struct {
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

// Question is a programming exercise. Questions are authored elsewhere;
// this service reads them to grade submissions against their cases.
type Question struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Statement string         `json:"statement"`
	Tags      []string       `json:"tags"`
	Cases     []ExpectedCase `json:"cases"`
	CreatedAt time.Time      `json:"created_at"`
}

// ExecuteRequest is the payload for running code against caller-provided
// expected cases (question editor preview).
type ExecuteRequest struct {
	Code  string         `json:"code" binding:"required"`
	Cases []ExpectedCase `json:"cases" binding:"required,min=1"`
}

// ExecuteQuestionRequest is the payload for running code against the cases
// of a stored question.
type ExecuteQuestionRequest struct {
	Code       string `json:"code" binding:"required"`
	QuestionID string `json:"question_id" binding:"required,uuid"`
}
