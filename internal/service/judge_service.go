package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/questio/questio-backend/internal/judge"
	"github.com/questio/questio-backend/internal/model"
	"github.com/rs/zerolog"
)

// Errors surfaced by grading operations.
var (
	ErrQuestionNotFound = errors.New("no question found for the given id")
	ErrDraftNotFound    = errors.New("no draft saved for this question")
	ErrUnauthenticated  = errors.New("caller must be authenticated")
)

// QuestionStore resolves stored questions. The returned case list is a
// snapshot: one grading pass never re-fetches it.
type QuestionStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
}

// SubmissionStore persists graded submissions. Both creates are
// append-only inserts.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, s *model.Submission) error
	CreateExamSubmission(ctx context.Context, s *model.ExamSubmission) error
	ListByUser(ctx context.Context, userID int) ([]model.Submission, error)
}

// DraftStore persists work-in-progress drafts keyed by (question, user).
type DraftStore interface {
	Upsert(ctx context.Context, d *model.Draft) error
	GetByQuestionAndUser(ctx context.Context, questionID uuid.UUID, userID int) (*model.Draft, error)
}

// SubmissionFeed receives graded exam submissions for live monitoring.
// Publishing is best-effort and never affects the grading result.
type SubmissionFeed interface {
	PublishSubmission(ctx context.Context, event model.SubmissionEvent) error
}

// JudgeService is the grading core: it runs submitted code against a
// question's expected cases, scores the comparison, and records the
// graded submission.
type JudgeService struct {
	exec        judge.Executor
	questions   QuestionStore
	submissions SubmissionStore
	drafts      DraftStore
	feed        SubmissionFeed
	log         zerolog.Logger
}

// NewJudgeService creates a new JudgeService. feed may be nil when no
// live monitor is wired (tests, CLI tools).
func NewJudgeService(
	exec judge.Executor,
	questions QuestionStore,
	submissions SubmissionStore,
	drafts DraftStore,
	feed SubmissionFeed,
	log zerolog.Logger,
) *JudgeService {
	return &JudgeService{
		exec:        exec,
		questions:   questions,
		submissions: submissions,
		drafts:      drafts,
		feed:        feed,
		log:         log.With().Str("component", "judge_service").Logger(),
	}
}

// ExecuteWithCases runs code against caller-provided expected cases and
// returns one comparison per case (question editor preview). It fails
// before touching the sandbox when the case list is empty or the first
// case has no expected output.
func (s *JudgeService) ExecuteWithCases(ctx context.Context, code string, cases []model.ExpectedCase) ([]model.ComparisonResult, error) {
	if len(cases) == 0 || cases[0].Output == "" {
		return nil, judge.ErrEmptyCaseSet
	}
	return judge.RunCases(ctx, s.exec, code, cases, judge.Options{Render: judge.RenderSpaceJoined})
}

// ExecuteForQuestion runs code against all cases of a stored question
// (question page editor).
func (s *JudgeService) ExecuteForQuestion(ctx context.Context, code string, questionID uuid.UUID) ([]model.ComparisonResult, error) {
	question, err := s.resolveQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return judge.RunCases(ctx, s.exec, code, question.Cases, judge.Options{Render: judge.RenderBracketed})
}

// ExecuteExamPreview runs code against only the first case of a question,
// the only feedback students get during an exam.
func (s *JudgeService) ExecuteExamPreview(ctx context.Context, code string, questionID uuid.UUID) ([]model.ComparisonResult, error) {
	question, err := s.resolveQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return judge.RunCases(ctx, s.exec, code, question.Cases, judge.Options{Render: judge.RenderBracketed, Limit: 1})
}

// Submit grades code against every case of a question and durably records
// the graded submission before returning it. Submissions are append-only:
// submitting twice yields two records.
func (s *JudgeService) Submit(ctx context.Context, code string, questionID uuid.UUID, caller *Claims) (*model.Submission, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	question, err := s.resolveQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	results, err := judge.RunCases(ctx, s.exec, code, question.Cases, judge.Options{Render: judge.RenderSpaceJoined})
	if err != nil {
		return nil, err
	}

	score, err := judge.Score(results)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		QuestionID:   question.ID,
		UserID:       caller.UserID,
		Code:         code,
		Results:      results,
		ScorePercent: score,
	}
	if err := s.submissions.CreateSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("persist submission: %w", err)
	}

	return submission, nil
}

// SubmitForExam grades code like Submit but records the result in the
// exam submissions collection, emits the grading audit line, and feeds
// the live monitor.
func (s *JudgeService) SubmitForExam(ctx context.Context, code string, questionID, examID uuid.UUID, caller *Claims) (*model.ExamSubmission, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	question, err := s.resolveQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	results, err := judge.RunCases(ctx, s.exec, code, question.Cases, judge.Options{Render: judge.RenderSpaceJoined})
	if err != nil {
		return nil, err
	}

	score, err := judge.Score(results)
	if err != nil {
		return nil, err
	}

	submission := &model.ExamSubmission{
		QuestionID:   question.ID,
		ExamID:       examID,
		UserID:       caller.UserID,
		Code:         code,
		Results:      results,
		ScorePercent: score,
	}
	if err := s.submissions.CreateExamSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("persist exam submission: %w", err)
	}

	// Audit line: who submitted what and how they scored.
	s.log.Info().
		Str("student", caller.Name).
		Str("registration", caller.Registration).
		Str("question", question.Title).
		Int("score_percent", score).
		Msg("Exam submission graded")

	if s.feed != nil {
		event := model.SubmissionEvent{
			UserID:        caller.UserID,
			UserName:      caller.Name,
			Registration:  caller.Registration,
			QuestionID:    question.ID,
			QuestionTitle: question.Title,
			ExamID:        examID,
			ScorePercent:  score,
			SubmittedAt:   submission.CreatedAt,
		}
		if err := s.feed.PublishSubmission(ctx, event); err != nil {
			s.log.Warn().Err(err).Msg("Submission feed publish failed")
		}
	}

	return submission, nil
}

// SaveDraft upserts the caller's work-in-progress code for a question and
// returns the post-upsert state. Saving for an unknown question fails
// with ErrQuestionNotFound.
func (s *JudgeService) SaveDraft(ctx context.Context, code string, questionID uuid.UUID, caller *Claims) (*model.Draft, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	question, err := s.resolveQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	draft := &model.Draft{
		QuestionID: question.ID,
		UserID:     caller.UserID,
		Code:       code,
	}
	if err := s.drafts.Upsert(ctx, draft); err != nil {
		return nil, fmt.Errorf("persist draft: %w", err)
	}

	return draft, nil
}

// GetDraft retrieves the caller's saved draft for a question so the editor
// can restore it.
func (s *JudgeService) GetDraft(ctx context.Context, questionID uuid.UUID, caller *Claims) (*model.Draft, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}

	draft, err := s.drafts.GetByQuestionAndUser(ctx, questionID, caller.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return draft, nil
}

// ListSubmissions retrieves the caller's practice submission history.
func (s *JudgeService) ListSubmissions(ctx context.Context, caller *Claims) ([]model.Submission, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	return s.submissions.ListByUser(ctx, caller.UserID)
}

func (s *JudgeService) resolveQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("resolve question: %w", err)
	}
	return question, nil
}
