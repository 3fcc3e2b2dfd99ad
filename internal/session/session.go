package session

import (
	"errors"
	"sync"
	"time"

	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
)

// Step is the active view of an exam session. Exactly one step is active at
// any time while the session exists.
type Step string

const (
	StepTaking Step = "taking"
	StepReview Step = "review"
)

var (
	ErrUnknownQuestion = errors.New("question is not part of this session")
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// Session is one student's in-progress attempt at a single exam. The question
// list is immutable once fetched; the answer map only grows or is overwritten,
// and is dropped with the session itself. All state lives in memory.
type Session struct {
	ID            string
	ExamID        string
	ExamTitle     string
	StudentID     string
	UsingFallback bool

	mu        sync.Mutex
	questions []model.Question
	byID      map[string]int
	answers   map[string]model.AnswerState
	cursor    int
	step      Step
	touched   time.Time
}

// ReviewRow is one question's recap line on the review screen.
type ReviewRow struct {
	Index         int    `json:"index"`
	QuestionID    string `json:"question_id"`
	Content       string `json:"content"`
	Answered      bool   `json:"answered"`
	AnswerContent string `json:"answer_content,omitempty"`
}

// Summary is the review screen's data: counts plus a per-question recap.
type Summary struct {
	Answered int         `json:"answered"`
	Total    int         `json:"total"`
	Rows     []ReviewRow `json:"rows"`
}

func New(id, examID, examTitle, studentID string, questions []model.Question, usingFallback bool) *Session {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		byID[q.ID] = i
	}
	return &Session{
		ID:            id,
		ExamID:        examID,
		ExamTitle:     examTitle,
		StudentID:     studentID,
		UsingFallback: usingFallback,
		questions:     questions,
		byID:          byID,
		answers:       make(map[string]model.AnswerState),
		step:          StepTaking,
		touched:       time.Now(),
	}
}

func (s *Session) touch() { s.touched = time.Now() }

// SetAnswer inserts or overwrites the answer for a question. Radio semantics:
// a new selection replaces any prior one. The choice id is trusted as-is, but
// the question must belong to this session's fetched set.
func (s *Session) SetAnswer(questionID, choiceID, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[questionID]; !ok {
		return ErrUnknownQuestion
	}
	s.answers[questionID] = model.AnswerState{Content: content, ChoiceID: choiceID}
	s.touch()
	return nil
}

// Answer returns the stored answer for a question; ok is false if unanswered.
func (s *Session) Answer(questionID string) (model.AnswerState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[questionID]
	return a, ok
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Questions() []model.Question {
	return s.questions
}

// Current returns the question under the cursor and its index. A session
// with no questions reports a zero question at index 0.
func (s *Session) Current() (model.Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.questions) == 0 {
		return model.Question{}, 0
	}
	return s.questions[s.cursor], s.cursor
}

// Next advances the cursor. At the last question it stays put; no wraparound.
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.questions)-1 {
		s.cursor++
	}
	s.touch()
	return s.cursor
}

// Prev moves the cursor back, clamped at the first question.
func (s *Session) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
	s.touch()
	return s.cursor
}

// Jump moves the cursor straight to the given zero-based index.
func (s *Session) Jump(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.questions) {
		return ErrIndexOutOfRange
	}
	s.cursor = index
	s.touch()
	return nil
}

// Progress is the answered-question share as a whole percent, rounded to the
// nearest integer. An empty question list reports 0.
func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

func (s *Session) progressLocked() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(float64(len(s.answers))/float64(len(s.questions))*100 + 0.5)
}

// Review transitions Taking → Review. Partial completion is allowed; there is
// nothing to validate.
func (s *Session) Review() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepReview
	s.touch()
}

// Resume transitions Review → Taking. When questionIndex is non-nil and in
// range the cursor jumps there, so "edit" on a review row lands on the row's
// question; otherwise the last active index is kept.
func (s *Session) Resume(questionIndex *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = StepTaking
	if questionIndex != nil && *questionIndex >= 0 && *questionIndex < len(s.questions) {
		s.cursor = *questionIndex
	}
	s.touch()
}

// Summarize builds the review recap over the answer map and question list.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := Summary{
		Answered: len(s.answers),
		Total:    len(s.questions),
		Rows:     make([]ReviewRow, 0, len(s.questions)),
	}
	for i, q := range s.questions {
		row := ReviewRow{Index: i, QuestionID: q.ID, Content: q.Content}
		if a, ok := s.answers[q.ID]; ok {
			row.Answered = true
			row.AnswerContent = a.Content
		}
		summary.Rows = append(summary.Rows, row)
	}
	return summary
}

// AnsweredSet reports which question ids currently have an answer, for the
// sidebar's answered/unanswered markers.
func (s *Session) AnsweredSet() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[string]bool, len(s.answers))
	for id := range s.answers {
		set[id] = true
	}
	return set
}

// BuildSubmission assembles the submit payload: exactly one entry per
// answered question, in question order, with ids exactly as stored.
// Unanswered questions are omitted.
func (s *Session) BuildSubmission() examapi.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := examapi.Submission{StudentID: s.StudentID}
	for _, q := range s.questions {
		a, ok := s.answers[q.ID]
		if !ok {
			continue
		}
		choiceID := a.ChoiceID
		sub.Answers = append(sub.Answers, examapi.AnswerPayload{
			QuestionID: q.ID,
			ChoiceID:   &choiceID,
		})
	}
	return sub
}

// ExpiredSince reports whether the session saw no activity within ttl.
func (s *Session) ExpiredSince(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched) > ttl
}
