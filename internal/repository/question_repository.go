package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/questio/questio-backend/internal/model"
)

// QuestionRepository handles question data access. Questions are authored
// by instructors; this service only reads them.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// GetByID retrieves a question with its case set.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	var rawCases []byte
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, statement, tags, cases, created_at
		 FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.Title, &q.Statement, &q.Tags, &rawCases, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawCases, &q.Cases); err != nil {
		return nil, fmt.Errorf("decode question cases: %w", err)
	}
	return q, nil
}

// ListAll retrieves every question ordered by creation time.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, statement, tags, cases, created_at
		 FROM questions ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		var rawCases []byte
		if err := rows.Scan(&q.ID, &q.Title, &q.Statement, &q.Tags, &rawCases, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawCases, &q.Cases); err != nil {
			return nil, fmt.Errorf("decode question cases: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ListDistinctTags retrieves the set of tags used across all questions.
func (r *QuestionRepository) ListDistinctTags(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT unnest(tags) AS tag FROM questions ORDER BY tag`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// Create inserts a new question. Used by the seed tool.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	rawCases, err := json.Marshal(q.Cases)
	if err != nil {
		return fmt.Errorf("encode question cases: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (title, statement, tags, cases)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		q.Title, q.Statement, q.Tags, rawCases,
	).Scan(&q.ID, &q.CreatedAt)
}
