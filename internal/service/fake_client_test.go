package service

import (
	"context"

	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
)

// fakeClient implements examapi.Client with per-method function hooks so each
// test stubs only what it exercises.
type fakeClient struct {
	loginFn         func(ctx context.Context, username, password string) (*examapi.LoginResult, error)
	listExamsFn     func(ctx context.Context, token string) ([]examapi.Exam, error)
	createExamFn    func(ctx context.Context, token string, payload examapi.CreateExamPayload) error
	deleteExamFn    func(ctx context.Context, token, examID string) error
	listQuestionsFn func(ctx context.Context, token, examID string) ([]model.Question, error)
	listClassesFn   func(ctx context.Context, token string) ([]model.Class, error)
	submitExamFn    func(ctx context.Context, token, examID string, sub examapi.Submission) error
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*examapi.LoginResult, error) {
	return f.loginFn(ctx, username, password)
}

func (f *fakeClient) ListExams(ctx context.Context, token string) ([]examapi.Exam, error) {
	return f.listExamsFn(ctx, token)
}

func (f *fakeClient) CreateExam(ctx context.Context, token string, payload examapi.CreateExamPayload) error {
	return f.createExamFn(ctx, token, payload)
}

func (f *fakeClient) DeleteExam(ctx context.Context, token, examID string) error {
	return f.deleteExamFn(ctx, token, examID)
}

func (f *fakeClient) ListQuestions(ctx context.Context, token, examID string) ([]model.Question, error) {
	return f.listQuestionsFn(ctx, token, examID)
}

func (f *fakeClient) ListClasses(ctx context.Context, token string) ([]model.Class, error) {
	return f.listClassesFn(ctx, token)
}

func (f *fakeClient) SubmitExam(ctx context.Context, token, examID string, sub examapi.Submission) error {
	return f.submitExamFn(ctx, token, examID, sub)
}
