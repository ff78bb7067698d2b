package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/questio/questio-backend/internal/model"
)

// DraftRepository handles work-in-progress draft persistence. The drafts
// table enforces uniqueness on (question_id, user_id), so every save is a
// single atomic UPSERT: concurrent saves for the same pair serialize to
// last-write-wins with no interleaved field updates.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository creates a new DraftRepository.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

// Upsert creates or fully overwrites the draft for (question, user) and
// returns the post-upsert state.
func (r *DraftRepository) Upsert(ctx context.Context, d *model.Draft) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO drafts (question_id, user_id, code, saved_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (question_id, user_id) DO UPDATE
		 SET code = EXCLUDED.code, saved_at = NOW()
		 RETURNING id, saved_at`,
		d.QuestionID, d.UserID, d.Code,
	).Scan(&d.ID, &d.SavedAt)
}

// GetByQuestionAndUser retrieves the draft for (question, user), if any.
func (r *DraftRepository) GetByQuestionAndUser(ctx context.Context, questionID uuid.UUID, userID int) (*model.Draft, error) {
	d := &model.Draft{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, question_id, user_id, code, saved_at
		 FROM drafts WHERE question_id = $1 AND user_id = $2`,
		questionID, userID,
	).Scan(&d.ID, &d.QuestionID, &d.UserID, &d.Code, &d.SavedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}
