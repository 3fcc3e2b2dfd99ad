package examapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/config"
	"github.com/studenthub/examgate/internal/model"
)

// ErrUnauthorized is returned for any 401 from the remote API. Callers treat
// it as a cue to clear the stored identity.
var ErrUnauthorized = errors.New("remote exam api rejected credentials")

// RemoteError is a non-2xx remote response other than 401, carrying the
// server-provided message when the body had one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote exam api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote exam api: %d", e.StatusCode)
}

// Exam is the remote exam entity as listed by GET /exams. It carries no
// status; status is derived client-side from the time window.
type Exam struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LoginResult is the identity material extracted from POST /login.
type LoginResult struct {
	Token string
	Name  string
	Role  string
}

// CreateExamPayload is the POST /exams request body.
type CreateExamPayload struct {
	Name          string    `json:"name"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	QuestionIDs   []string  `json:"questionIds"`
	SchoolClassID string    `json:"schoolClassId"`
}

// AnswerPayload is one answered question in a submission. ChoiceID is a
// pointer so an explicit null can be sent for an unanswered entry.
type AnswerPayload struct {
	QuestionID string  `json:"questionId"`
	ChoiceID   *string `json:"choiceId"`
}

// Submission is the POST /exams/{id}/submit request body.
type Submission struct {
	StudentID string          `json:"studentId"`
	Answers   []AnswerPayload `json:"answers"`
}

// Client is the gateway's view of the remote exam/grading API. All methods
// are plain request/response; there is no retry or caching layer here.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ListExams(ctx context.Context, token string) ([]Exam, error)
	CreateExam(ctx context.Context, token string, payload CreateExamPayload) error
	DeleteExam(ctx context.Context, token, examID string) error
	ListQuestions(ctx context.Context, token, examID string) ([]model.Question, error)
	ListClasses(ctx context.Context, token string) ([]model.Class, error)
	SubmitExam(ctx context.Context, token, examID string, sub Submission) error
}

type client struct {
	http     *resty.Client
	pageSize int
}

// NewClient builds the resty-backed client from config. Timeouts are left to
// the caller's context.
func NewClient(cfg *config.Config) Client {
	rc := resty.New().
		SetBaseURL(cfg.ExamAPI.BaseURL).
		SetHeader("Accept", "*/*")
	return &client{http: rc, pageSize: cfg.ExamAPI.PageSize}
}

func (c *client) request(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

func (c *client) pageParams() map[string]string {
	return map[string]string{
		"pageNumber": "1",
		"pageSize":   strconv.Itoa(c.pageSize),
	}
}

// checkStatus is the single chokepoint mapping remote statuses to errors:
// 401 always becomes ErrUnauthorized, any other non-2xx becomes a RemoteError
// with the server's {message} when one was sent.
func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.IsSuccess() {
		return nil
	}
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	return &RemoteError{StatusCode: resp.StatusCode(), Message: body.Message}
}

func (c *client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := c.request(ctx, "").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return parseLoginBody(resp.Body())
}

// parseLoginBody tolerates the shapes the login endpoint has been observed to
// return: the documented loginResponse envelope (token or accesstoken) and a
// bare token string.
func parseLoginBody(body []byte) (*LoginResult, error) {
	var envelope struct {
		LoginResponse *struct {
			Name        string `json:"name"`
			Role        string `json:"role"`
			Token       string `json:"token"`
			AccessToken string `json:"accesstoken"`
		} `json:"loginResponse"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.LoginResponse != nil {
		lr := envelope.LoginResponse
		token := lr.Token
		if token == "" {
			token = lr.AccessToken
		}
		if token == "" {
			return nil, fmt.Errorf("%w: loginResponse without token", ErrUnexpectedShape)
		}
		return &LoginResult{Token: token, Name: lr.Name, Role: lr.Role}, nil
	}
	var bare string
	if err := json.Unmarshal(body, &bare); err == nil && bare != "" {
		return &LoginResult{Token: bare}, nil
	}
	return nil, fmt.Errorf("%w: unrecognized login response", ErrUnexpectedShape)
}

func (c *client) ListExams(ctx context.Context, token string) ([]Exam, error) {
	resp, err := c.request(ctx, token).
		SetQueryParams(c.pageParams()).
		Get("/exams")
	if err != nil {
		return nil, fmt.Errorf("listing exams: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var exams []Exam
	if err := decodeList(resp.Body(), &exams); err != nil {
		return nil, fmt.Errorf("exams response: %w", err)
	}
	return exams, nil
}

func (c *client) CreateExam(ctx context.Context, token string, payload CreateExamPayload) error {
	resp, err := c.request(ctx, token).
		SetBody(payload).
		Post("/exams")
	if err != nil {
		return fmt.Errorf("creating exam: %w", err)
	}
	return checkStatus(resp)
}

func (c *client) DeleteExam(ctx context.Context, token, examID string) error {
	resp, err := c.request(ctx, token).
		SetPathParam("exam_id", examID).
		Delete("/exams/{exam_id}")
	if err != nil {
		return fmt.Errorf("deleting exam %s: %w", examID, err)
	}
	return checkStatus(resp)
}

func (c *client) ListQuestions(ctx context.Context, token, examID string) ([]model.Question, error) {
	req := c.request(ctx, token).SetQueryParams(c.pageParams())
	if examID != "" {
		req.SetQueryParam("examId", examID)
	}
	resp, err := req.Get("/questions")
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := decodeList(resp.Body(), &questions); err != nil {
		return nil, fmt.Errorf("questions response: %w", err)
	}
	return questions, nil
}

func (c *client) ListClasses(ctx context.Context, token string) ([]model.Class, error) {
	resp, err := c.request(ctx, token).
		SetQueryParams(c.pageParams()).
		Get("/Classes")
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var classes []model.Class
	if err := decodeList(resp.Body(), &classes); err != nil {
		return nil, fmt.Errorf("classes response: %w", err)
	}
	return classes, nil
}

func (c *client) SubmitExam(ctx context.Context, token, examID string, sub Submission) error {
	log.Info().Str("examID", examID).Int("answerCount", len(sub.Answers)).Msg("Submitting exam to remote API")
	resp, err := c.request(ctx, token).
		SetPathParam("exam_id", examID).
		SetBody(sub).
		Post("/exams/{exam_id}/submit")
	if err != nil {
		return fmt.Errorf("submitting exam %s: %w", examID, err)
	}
	return checkStatus(resp)
}
