package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/questio/questio-backend/internal/judge"
	"github.com/questio/questio-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// execFunc adapts a function to the judge.Executor interface.
type execFunc func(ctx context.Context, code string, inputs []string) (string, error)

func (f execFunc) Execute(ctx context.Context, code string, inputs []string) (string, error) {
	return f(ctx, code, inputs)
}

// sumExec behaves like a correct program for "sum two integers": "2 3" -> "5".
var sumExec = execFunc(func(_ context.Context, _ string, inputs []string) (string, error) {
	switch fmt.Sprintf("%s %s", inputs[0], inputs[1]) {
	case "2 3":
		return "5", nil
	case "4 4":
		return "8", nil
	default:
		return "?", nil
	}
})

type memQuestionStore struct {
	questions map[uuid.UUID]*model.Question
}

func (s *memQuestionStore) GetByID(_ context.Context, id uuid.UUID) (*model.Question, error) {
	q, ok := s.questions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return q, nil
}

type memSubmissionStore struct {
	mu              sync.Mutex
	submissions     []model.Submission
	examSubmissions []model.ExamSubmission
}

func (s *memSubmissionStore) CreateSubmission(_ context.Context, sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now()
	s.submissions = append(s.submissions, *sub)
	return nil
}

func (s *memSubmissionStore) CreateExamSubmission(_ context.Context, sub *model.ExamSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now()
	s.examSubmissions = append(s.examSubmissions, *sub)
	return nil
}

func (s *memSubmissionStore) ListByUser(_ context.Context, userID int) ([]model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Submission
	for i := len(s.submissions) - 1; i >= 0; i-- {
		if s.submissions[i].UserID == userID {
			out = append(out, s.submissions[i])
		}
	}
	return out, nil
}

type memDraftStore struct {
	mu     sync.Mutex
	drafts map[string]*model.Draft
}

func draftKey(questionID uuid.UUID, userID int) string {
	return fmt.Sprintf("%s:%d", questionID, userID)
}

func (s *memDraftStore) GetByQuestionAndUser(_ context.Context, questionID uuid.UUID, userID int) (*model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[draftKey(questionID, userID)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *d
	return &copied, nil
}

func (s *memDraftStore) Upsert(_ context.Context, d *model.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drafts == nil {
		s.drafts = make(map[string]*model.Draft)
	}
	key := draftKey(d.QuestionID, d.UserID)
	if existing, ok := s.drafts[key]; ok {
		d.ID = existing.ID
	} else {
		d.ID = uuid.New()
	}
	d.SavedAt = time.Now()
	stored := *d
	s.drafts[key] = &stored
	return nil
}

type memFeed struct {
	mu     sync.Mutex
	events []model.SubmissionEvent
}

func (f *memFeed) PublishSubmission(_ context.Context, event model.SubmissionEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

type judgeFixture struct {
	svc         *JudgeService
	questions   *memQuestionStore
	submissions *memSubmissionStore
	drafts      *memDraftStore
	feed        *memFeed
	question    *model.Question
}

func newJudgeFixture(t *testing.T, exec judge.Executor) *judgeFixture {
	t.Helper()

	question := &model.Question{
		ID:        uuid.New(),
		Title:     "Soma de dois inteiros",
		Statement: "Leia dois inteiros e imprima a soma.",
		Cases: []model.ExpectedCase{
			{Inputs: []string{"2", "3"}, Output: "5"},
			{Inputs: []string{"4", "4"}, Output: "8"},
		},
	}

	questions := &memQuestionStore{questions: map[uuid.UUID]*model.Question{question.ID: question}}
	submissions := &memSubmissionStore{}
	drafts := &memDraftStore{}
	feed := &memFeed{}

	svc := NewJudgeService(exec, questions, submissions, drafts, feed, zerolog.Nop())
	return &judgeFixture{
		svc:         svc,
		questions:   questions,
		submissions: submissions,
		drafts:      drafts,
		feed:        feed,
		question:    question,
	}
}

func student() *Claims {
	return &Claims{UserID: 7, Name: "Maria Silva", Registration: "20230042"}
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.Submit(context.Background(), "code", f.question.ID, nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Empty(t, f.submissions.submissions)
}

func TestSubmitUnknownQuestion(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.Submit(context.Background(), "code", uuid.New(), student())
	require.ErrorIs(t, err, ErrQuestionNotFound)
	require.Empty(t, f.submissions.submissions)
}

func TestSubmitGradesAndPersists(t *testing.T) {
	// "2 3" passes, "4 4" fails: one of two cases correct is 50%.
	exec := execFunc(func(_ context.Context, _ string, inputs []string) (string, error) {
		if inputs[0] == "2" {
			return "5", nil
		}
		return "9", nil
	})
	f := newJudgeFixture(t, exec)

	sub, err := f.svc.Submit(context.Background(), "code", f.question.ID, student())
	require.NoError(t, err)
	require.Equal(t, 50, sub.ScorePercent)
	require.Len(t, sub.Results, 2)
	require.Equal(t, "2 3", sub.Results[0].Input)
	require.Equal(t, "9", sub.Results[1].Output)
	require.Equal(t, "8", sub.Results[1].ExpectedOutput)

	require.Len(t, f.submissions.submissions, 1)
	require.Equal(t, 7, f.submissions.submissions[0].UserID)
}

func TestSubmitTwiceAppendsTwoRecords(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.Submit(context.Background(), "v1", f.question.ID, student())
	require.NoError(t, err)
	_, err = f.svc.Submit(context.Background(), "v2", f.question.ID, student())
	require.NoError(t, err)

	require.Len(t, f.submissions.submissions, 2)
	require.Equal(t, "v1", f.submissions.submissions[0].Code)
	require.Equal(t, "v2", f.submissions.submissions[1].Code)
}

func TestSubmitForExamFeedsMonitor(t *testing.T) {
	f := newJudgeFixture(t, sumExec)
	examID := uuid.New()

	sub, err := f.svc.SubmitForExam(context.Background(), "code", f.question.ID, examID, student())
	require.NoError(t, err)
	require.Equal(t, 100, sub.ScorePercent)
	require.Equal(t, examID, sub.ExamID)

	require.Len(t, f.submissions.examSubmissions, 1)
	require.Empty(t, f.submissions.submissions)

	require.Len(t, f.feed.events, 1)
	require.Equal(t, "20230042", f.feed.events[0].Registration)
	require.Equal(t, f.question.Title, f.feed.events[0].QuestionTitle)
	require.Equal(t, 100, f.feed.events[0].ScorePercent)
}

func TestExecuteExamPreviewRunsFirstCaseOnly(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	results, err := f.svc.ExecuteExamPreview(context.Background(), "code", f.question.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "[2, 3]", results[0].Input)
}

func TestExecuteForQuestionBracketsInputs(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	results, err := f.svc.ExecuteForQuestion(context.Background(), "code", f.question.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "[4, 4]", results[1].Input)
}

func TestExecuteWithCasesRejectsEmptySets(t *testing.T) {
	invoked := false
	exec := execFunc(func(_ context.Context, _ string, _ []string) (string, error) {
		invoked = true
		return "", nil
	})
	f := newJudgeFixture(t, exec)

	_, err := f.svc.ExecuteWithCases(context.Background(), "code", nil)
	require.ErrorIs(t, err, judge.ErrEmptyCaseSet)

	// First case with no expected output counts as empty too.
	_, err = f.svc.ExecuteWithCases(context.Background(), "code", []model.ExpectedCase{{Inputs: []string{"1"}}})
	require.ErrorIs(t, err, judge.ErrEmptyCaseSet)
	require.False(t, invoked)
}

func TestSaveDraftUnknownQuestion(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.SaveDraft(context.Background(), "wip", uuid.New(), student())
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSaveDraftLastWriteWins(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	first, err := f.svc.SaveDraft(context.Background(), "wip v1", f.question.ID, student())
	require.NoError(t, err)
	second, err := f.svc.SaveDraft(context.Background(), "wip v2", f.question.ID, student())
	require.NoError(t, err)

	// Same (question, user) slot: the second save replaces the first.
	require.Equal(t, first.ID, second.ID)
	require.Len(t, f.drafts.drafts, 1)
	require.Equal(t, "wip v2", f.drafts.drafts[draftKey(f.question.ID, 7)].Code)
}

func TestGetDraftRoundTrips(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.GetDraft(context.Background(), f.question.ID, student())
	require.ErrorIs(t, err, ErrDraftNotFound)

	_, err = f.svc.SaveDraft(context.Background(), "wip", f.question.ID, student())
	require.NoError(t, err)

	draft, err := f.svc.GetDraft(context.Background(), f.question.ID, student())
	require.NoError(t, err)
	require.Equal(t, "wip", draft.Code)
}

func TestListSubmissionsRequiresAuthentication(t *testing.T) {
	f := newJudgeFixture(t, sumExec)

	_, err := f.svc.ListSubmissions(context.Background(), nil)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
