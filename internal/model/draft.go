package model

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a work-in-progress snapshot of a user's code for a question.
// At most one draft exists per (question, user) pair; saving again fully
// overwrites the previous code and timestamp.
type Draft struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	UserID     int       `json:"user_id"`
	Code       string    `json:"code"`
	SavedAt    time.Time `json:"saved_at"`
}

// SaveDraftRequest is the payload for saving a draft.
type SaveDraftRequest struct {
	Code       string `json:"code" binding:"required"`
	QuestionID string `json:"question_id" binding:"required,uuid"`
}
