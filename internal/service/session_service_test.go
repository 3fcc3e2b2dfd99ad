package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studenthub/examgate/config"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
	"github.com/studenthub/examgate/internal/session"
)

func testAuthContext() *auth.Context {
	return &auth.Context{Key: "id-1", Name: "An", Role: auth.RoleStudent, RemoteToken: "remote-tok"}
}

func serviceQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Content: "Câu 1", Choices: []model.Choice{{ID: "c1", Content: "A"}, {ID: "c2", Content: "B"}}},
		{ID: "q2", Content: "Câu 2", Choices: []model.Choice{{ID: "c3", Content: "A"}, {ID: "c4", Content: "B"}}},
		{ID: "q3", Content: "Câu 3", Choices: []model.Choice{{ID: "c5", Content: "A"}, {ID: "c6", Content: "B"}}},
	}
}

func newSessionService(client examapi.Client, fallback bool) (SessionService, *session.Manager) {
	cfg := &config.Config{}
	cfg.Session.QuestionFallback = fallback
	manager := session.NewManager(2 * time.Hour)
	return NewSessionService(cfg, client, manager), manager
}

func TestStartServesFetchedQuestions(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(_ context.Context, token, examID string) ([]model.Question, error) {
			assert.Equal(t, "remote-tok", token)
			assert.Equal(t, "e1", examID)
			return serviceQuestions(), nil
		},
	}
	svc, manager := newSessionService(client, true)

	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{ExamTitle: "Giữa kỳ"})
	require.NoError(t, err)
	assert.False(t, state.UsingFallback)
	assert.Equal(t, 3, state.TotalQuestions)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, "q1", state.CurrentQuestion.ID)
	assert.Equal(t, "Giữa kỳ", state.ExamTitle)
	assert.Equal(t, 1, manager.Count())
}

func TestStartFallsBackToPlaceholderQuestions(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return nil, &examapi.RemoteError{StatusCode: 500}
		},
	}
	svc, _ := newSessionService(client, true)

	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)
	assert.True(t, state.UsingFallback)
	assert.Equal(t, len(PlaceholderQuestions()), state.TotalQuestions)
}

func TestStartNeverPapersOverUnauthorized(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return nil, examapi.ErrUnauthorized
		},
	}
	svc, manager := newSessionService(client, true)

	_, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	assert.ErrorIs(t, err, examapi.ErrUnauthorized)
	assert.Equal(t, 0, manager.Count())
}

func TestStartFallbackDisabledPropagatesError(t *testing.T) {
	fetchErr := &examapi.RemoteError{StatusCode: 503}
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return nil, fetchErr
		},
	}
	svc, manager := newSessionService(client, false)

	_, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	var remoteErr *examapi.RemoteError
	assert.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, 0, manager.Count())
}

func TestSelectAnswerUpdatesStateAndProgress(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
	}
	svc, _ := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)

	state, err = svc.SelectAnswer(state.SessionID, dto.SelectAnswerRequest{QuestionID: "q1", ChoiceID: "c2", Content: "B"})
	require.NoError(t, err)
	assert.Equal(t, "c2", state.SelectedChoice)
	assert.Equal(t, 33, state.Progress)
	assert.True(t, state.Answered["q1"])
	assert.False(t, state.Answered["q2"])
}

func TestNavigateActions(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
	}
	svc, _ := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)
	id := state.SessionID

	state, err = svc.Navigate(id, dto.NavigateRequest{Action: "next"})
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentIndex)

	two := 2
	state, err = svc.Navigate(id, dto.NavigateRequest{Action: "jump", Index: &two})
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentIndex)
	assert.Equal(t, "q3", state.CurrentQuestion.ID)

	_, err = svc.Navigate(id, dto.NavigateRequest{Action: "jump"})
	assert.ErrorIs(t, err, session.ErrIndexOutOfRange)

	state, err = svc.Navigate(id, dto.NavigateRequest{Action: "prev"})
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentIndex)
}

func TestReviewRoundTrip(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
	}
	svc, _ := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)
	id := state.SessionID

	_, err = svc.SelectAnswer(id, dto.SelectAnswerRequest{QuestionID: "q2", ChoiceID: "c3", Content: "A"})
	require.NoError(t, err)

	review, err := svc.EnterReview(id)
	require.NoError(t, err)
	assert.Equal(t, 1, review.Answered)
	assert.Equal(t, 3, review.Total)
	assert.Equal(t, 2, review.Unanswered)
	require.Len(t, review.Rows, 3)
	assert.False(t, review.Rows[0].Answered)
	assert.True(t, review.Rows[1].Answered)

	// Answering and navigation are locked while in review.
	_, err = svc.SelectAnswer(id, dto.SelectAnswerRequest{QuestionID: "q1", ChoiceID: "c1"})
	assert.ErrorIs(t, err, ErrWrongStep)
	_, err = svc.Navigate(id, dto.NavigateRequest{Action: "next"})
	assert.ErrorIs(t, err, ErrWrongStep)

	zero := 0
	state, err = svc.ResumeTaking(id, dto.ResumeRequest{QuestionIndex: &zero})
	require.NoError(t, err)
	assert.Equal(t, string(session.StepTaking), state.Step)
	assert.Equal(t, 0, state.CurrentIndex)
	assert.True(t, state.Answered["q2"], "answers must survive the review round trip")
}

func TestSubmitRequiresReviewStep(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
	}
	svc, _ := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), testAuthContext(), state.SessionID)
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestSubmitSuccessDestroysSession(t *testing.T) {
	var sent examapi.Submission
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
		submitExamFn: func(_ context.Context, _, examID string, sub examapi.Submission) error {
			assert.Equal(t, "e1", examID)
			sent = sub
			return nil
		},
	}
	svc, manager := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)
	id := state.SessionID

	_, err = svc.SelectAnswer(id, dto.SelectAnswerRequest{QuestionID: "q1", ChoiceID: "c1", Content: "A"})
	require.NoError(t, err)
	_, err = svc.EnterReview(id)
	require.NoError(t, err)

	result, err := svc.Submit(context.Background(), testAuthContext(), id)
	require.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.True(t, result.RefreshAssignments)

	// StudentID falls back to the caller's identity key when the start
	// request left it empty.
	assert.Equal(t, "id-1", sent.StudentID)
	require.Len(t, sent.Answers, 1)
	assert.Equal(t, "q1", sent.Answers[0].QuestionID)

	assert.Equal(t, 0, manager.Count())
	_, err = svc.State(id)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestSubmitFailureKeepsSessionIntact(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
		submitExamFn: func(context.Context, string, string, examapi.Submission) error {
			return &examapi.RemoteError{StatusCode: 500, Message: "grader down"}
		},
	}
	svc, manager := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)
	id := state.SessionID

	_, err = svc.SelectAnswer(id, dto.SelectAnswerRequest{QuestionID: "q3", ChoiceID: "c6", Content: "B"})
	require.NoError(t, err)
	_, err = svc.EnterReview(id)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), testAuthContext(), id)
	var remoteErr *examapi.RemoteError
	require.True(t, errors.As(err, &remoteErr))

	assert.Equal(t, 1, manager.Count())
	state, err = svc.State(id)
	require.NoError(t, err)
	assert.Equal(t, string(session.StepReview), state.Step)
	assert.True(t, state.Answered["q3"], "a failed submission must not lose answers")
}

func TestExitDiscardsSession(t *testing.T) {
	client := &fakeClient{
		listQuestionsFn: func(context.Context, string, string) ([]model.Question, error) {
			return serviceQuestions(), nil
		},
	}
	svc, manager := newSessionService(client, true)
	state, err := svc.Start(context.Background(), testAuthContext(), "e1", dto.StartSessionRequest{})
	require.NoError(t, err)

	svc.Exit(state.SessionID)
	assert.Equal(t, 0, manager.Count())
}
