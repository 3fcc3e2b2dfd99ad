package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/config"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/session"
)

// ErrWrongStep is returned for an operation that is not valid in the
// session's current step (answering while in review, submitting while taking).
var ErrWrongStep = errors.New("operation not valid in the session's current step")

// SessionService orchestrates the exam-taking flow: it starts sessions,
// routes taking-view actions into the session, drives the taking/review
// transitions and performs the final submission.
type SessionService interface {
	Start(ctx context.Context, ac *auth.Context, examID string, req dto.StartSessionRequest) (*dto.SessionStateDTO, error)
	State(sessionID string) (*dto.SessionStateDTO, error)
	SelectAnswer(sessionID string, req dto.SelectAnswerRequest) (*dto.SessionStateDTO, error)
	Navigate(sessionID string, req dto.NavigateRequest) (*dto.SessionStateDTO, error)
	EnterReview(sessionID string) (*dto.ReviewDTO, error)
	ResumeTaking(sessionID string, req dto.ResumeRequest) (*dto.SessionStateDTO, error)
	Submit(ctx context.Context, ac *auth.Context, sessionID string) (*dto.SubmitResultDTO, error)
	Exit(sessionID string)
}

type sessionService struct {
	client          examapi.Client
	manager         *session.Manager
	fallbackEnabled bool
}

func NewSessionService(cfg *config.Config, client examapi.Client, manager *session.Manager) SessionService {
	return &sessionService{
		client:          client,
		manager:         manager,
		fallbackEnabled: cfg.Session.QuestionFallback,
	}
}

// Start fetches the exam's questions and opens a new in-memory session in the
// Taking step. When the fetch fails and the placeholder fallback is enabled,
// the built-in question set is substituted so the student still sees a paper;
// a 401 is never papered over.
func (s *sessionService) Start(ctx context.Context, ac *auth.Context, examID string, req dto.StartSessionRequest) (*dto.SessionStateDTO, error) {
	questions, err := s.client.ListQuestions(ctx, ac.RemoteToken, examID)
	usingFallback := false
	if err != nil {
		if errors.Is(err, examapi.ErrUnauthorized) || !s.fallbackEnabled {
			return nil, err
		}
		log.Warn().Err(err).Str("examID", examID).Msg("Question fetch failed, starting session on placeholder questions")
		questions = PlaceholderQuestions()
		usingFallback = true
	}

	studentID := req.StudentID
	if studentID == "" {
		studentID = ac.Key
	}

	sess := session.New(uuid.NewString(), examID, req.ExamTitle, studentID, questions, usingFallback)
	s.manager.Put(sess)
	log.Info().Str("sessionID", sess.ID).Str("examID", examID).Int("questionCount", len(questions)).Msg("Exam session started")
	return s.stateDTO(sess)
}

func (s *sessionService) State(sessionID string) (*dto.SessionStateDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.stateDTO(sess)
}

func (s *sessionService) SelectAnswer(sessionID string, req dto.SelectAnswerRequest) (*dto.SessionStateDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step() != session.StepTaking {
		return nil, ErrWrongStep
	}
	if err := sess.SetAnswer(req.QuestionID, req.ChoiceID, req.Content); err != nil {
		return nil, err
	}
	return s.stateDTO(sess)
}

func (s *sessionService) Navigate(sessionID string, req dto.NavigateRequest) (*dto.SessionStateDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step() != session.StepTaking {
		return nil, ErrWrongStep
	}
	switch req.Action {
	case "next":
		sess.Next()
	case "prev":
		sess.Prev()
	case "jump":
		if req.Index == nil {
			return nil, session.ErrIndexOutOfRange
		}
		if err := sess.Jump(*req.Index); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown navigation action %q", req.Action)
	}
	return s.stateDTO(sess)
}

func (s *sessionService) EnterReview(sessionID string) (*dto.ReviewDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Review()
	return s.reviewDTO(sess)
}

func (s *sessionService) ResumeTaking(sessionID string, req dto.ResumeRequest) (*dto.SessionStateDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Resume(req.QuestionIndex)
	return s.stateDTO(sess)
}

// Submit posts the answered questions to the remote API. Success destroys the
// session and cues an assignment-list refresh. On failure the session stays
// in Review with every answer intact so the student can retry.
func (s *sessionService) Submit(ctx context.Context, ac *auth.Context, sessionID string) (*dto.SubmitResultDTO, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step() != session.StepReview {
		return nil, ErrWrongStep
	}

	sub := sess.BuildSubmission()
	if err := s.client.SubmitExam(ctx, ac.RemoteToken, sess.ExamID, sub); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("examID", sess.ExamID).Msg("Exam submission failed")
		return nil, err
	}

	s.manager.Delete(sessionID)
	log.Info().Str("sessionID", sessionID).Str("examID", sess.ExamID).Int("answerCount", len(sub.Answers)).Msg("Exam submitted")
	return &dto.SubmitResultDTO{Submitted: true, RefreshAssignments: true}, nil
}

func (s *sessionService) Exit(sessionID string) {
	s.manager.Delete(sessionID)
}

func (s *sessionService) stateDTO(sess *session.Session) (*dto.SessionStateDTO, error) {
	current, index := sess.Current()

	var questionDTO dto.QuestionDTO
	if err := copier.Copy(&questionDTO, &current); err != nil {
		return nil, fmt.Errorf("preparing question: %w", err)
	}

	state := &dto.SessionStateDTO{
		SessionID:       sess.ID,
		ExamID:          sess.ExamID,
		ExamTitle:       sess.ExamTitle,
		Step:            string(sess.Step()),
		UsingFallback:   sess.UsingFallback,
		TotalQuestions:  len(sess.Questions()),
		CurrentIndex:    index,
		CurrentQuestion: questionDTO,
		Progress:        sess.Progress(),
		Answered:        sess.AnsweredSet(),
	}
	if a, ok := sess.Answer(current.ID); ok {
		state.SelectedChoice = a.ChoiceID
	}
	return state, nil
}

func (s *sessionService) reviewDTO(sess *session.Session) (*dto.ReviewDTO, error) {
	summary := sess.Summarize()
	review := &dto.ReviewDTO{
		SessionID:  sess.ID,
		Answered:   summary.Answered,
		Total:      summary.Total,
		Unanswered: summary.Total - summary.Answered,
	}
	if err := copier.Copy(&review.Rows, &summary.Rows); err != nil {
		return nil, fmt.Errorf("preparing review rows: %w", err)
	}
	if review.Rows == nil {
		review.Rows = []dto.ReviewRowDTO{}
	}
	return review, nil
}
