package examapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studenthub/examgate/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.Config{}
	cfg.ExamAPI.BaseURL = srv.URL
	cfg.ExamAPI.PageSize = 50
	return NewClient(cfg)
}

func TestListExamsDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exams", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageNumber"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		io.WriteString(w, `{"data":[{"id":"e1","name":"Giữa kỳ","start":"2025-06-02T07:00:00Z","end":"2025-06-02T08:00:00Z"}]}`)
	})

	exams, err := c.ListExams(context.Background(), "tok-1")
	require.NoError(t, err)
	require.Len(t, exams, 1)
	assert.Equal(t, "e1", exams[0].ID)
	assert.Equal(t, "Giữa kỳ", exams[0].Name)
	assert.True(t, exams[0].End.After(exams[0].Start))
}

func TestListExamsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListExams(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListQuestionsCarriesExamFilter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/questions", r.URL.Path)
		assert.Equal(t, "e7", r.URL.Query().Get("examId"))
		io.WriteString(w, `{"items":[{"id":"q1","content":"2+2?","choices":[{"id":"c1","content":"4"}]}]}`)
	})

	questions, err := c.ListQuestions(context.Background(), "tok", "e7")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
	require.Len(t, questions[0].Choices, 1)
}

func TestCreateExamRemoteErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"message":"exam name already taken"}`)
	})

	err := c.CreateExam(context.Background(), "tok", CreateExamPayload{Name: "Dup"})
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusConflict, remoteErr.StatusCode)
	assert.Contains(t, remoteErr.Error(), "exam name already taken")
}

func TestDeleteExamHitsExamPath(t *testing.T) {
	var gotPath, gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteExam(context.Background(), "tok", "e9"))
	assert.Equal(t, "/exams/e9", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestSubmitExamSendsNullForUnansweredChoice(t *testing.T) {
	var body []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	choice := "c2"
	sub := Submission{
		StudentID: "s1",
		Answers: []AnswerPayload{
			{QuestionID: "q1", ChoiceID: &choice},
			{QuestionID: "q2", ChoiceID: nil},
		},
	}
	require.NoError(t, c.SubmitExam(context.Background(), "tok", "e1", sub))

	var sent struct {
		StudentID string `json:"studentId"`
		Answers   []struct {
			QuestionID string  `json:"questionId"`
			ChoiceID   *string `json:"choiceId"`
		} `json:"answers"`
	}
	require.NoError(t, json.Unmarshal(body, &sent))
	assert.Equal(t, "s1", sent.StudentID)
	require.Len(t, sent.Answers, 2)
	assert.Equal(t, "c2", *sent.Answers[0].ChoiceID)
	assert.Nil(t, sent.Answers[1].ChoiceID)
}

func TestParseLoginBody(t *testing.T) {
	testCases := []struct {
		name      string
		body      string
		wantToken string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "documented envelope",
			body:      `{"loginResponse":{"name":"Cô Lan","role":"teacher","token":"t-1"}}`,
			wantToken: "t-1",
			wantName:  "Cô Lan",
		},
		{
			name:      "accesstoken variant",
			body:      `{"loginResponse":{"name":"An","role":"student","accesstoken":"t-2"}}`,
			wantToken: "t-2",
			wantName:  "An",
		},
		{
			name:      "bare token string",
			body:      `"t-3"`,
			wantToken: "t-3",
		},
		{
			name:    "envelope without any token",
			body:    `{"loginResponse":{"name":"An"}}`,
			wantErr: true,
		},
		{
			name:    "unrelated object",
			body:    `{"status":"ok"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseLoginBody([]byte(tc.body))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, got.Token)
			assert.Equal(t, tc.wantName, got.Name)
		})
	}
}
