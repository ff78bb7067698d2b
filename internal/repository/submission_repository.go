package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/questio/questio-backend/internal/model"
)

// SubmissionRepository handles graded submission persistence. Both
// collections are append-only: records are never updated or deleted, so
// resubmissions always produce a new row.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// CreateSubmission inserts a graded practice submission. The insert is
// durable before the call returns.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, s *model.Submission) error {
	rawResults, err := json.Marshal(s.Results)
	if err != nil {
		return fmt.Errorf("encode submission results: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO submissions (question_id, user_id, code, results, score_percent)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.QuestionID, s.UserID, s.Code, rawResults, s.ScorePercent,
	).Scan(&s.ID, &s.CreatedAt)
}

// CreateExamSubmission inserts a graded exam submission.
func (r *SubmissionRepository) CreateExamSubmission(ctx context.Context, s *model.ExamSubmission) error {
	rawResults, err := json.Marshal(s.Results)
	if err != nil {
		return fmt.Errorf("encode submission results: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO exam_submissions (question_id, exam_id, user_id, code, results, score_percent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		s.QuestionID, s.ExamID, s.UserID, s.Code, rawResults, s.ScorePercent,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListByUser retrieves a user's practice submission history, newest first.
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID int) ([]model.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question_id, user_id, code, results, score_percent, created_at
		 FROM submissions WHERE user_id = $1
		 ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []model.Submission
	for rows.Next() {
		var s model.Submission
		var rawResults []byte
		if err := rows.Scan(&s.ID, &s.QuestionID, &s.UserID, &s.Code, &rawResults, &s.ScorePercent, &s.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawResults, &s.Results); err != nil {
			return nil, fmt.Errorf("decode submission results: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
