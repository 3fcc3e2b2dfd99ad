package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
)

// ValidationError is the consolidated client-side validation failure for the
// creation form. Nothing is sent to the remote API when it is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// startLayouts are the timestamp forms the creation form may send: full ISO
// and the browser's datetime-local value.
var startLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

// CreationService backs the teacher's exam creation form.
type CreationService interface {
	// Catalog fetches the question bank and the class list. The two fetches
	// run concurrently and fail independently: a class fetch failure falls
	// back to the built-in class list, a question fetch failure is an error
	// because the form is unusable without the bank.
	Catalog(ctx context.Context, ac *auth.Context) (*dto.CatalogDTO, error)
	Create(ctx context.Context, ac *auth.Context, req dto.CreateExamRequest) error
}

type creationService struct {
	client examapi.Client
}

func NewCreationService(client examapi.Client) CreationService {
	return &creationService{client: client}
}

func defaultClasses() []model.Class {
	return []model.Class{
		{ID: "81114db7-ef7c-4cec-97b1-4428aa7aada5", Name: "10A1"},
		{ID: "mock-2", Name: "10A2"},
		{ID: "mock-3", Name: "11B1"},
	}
}

func (s *creationService) Catalog(ctx context.Context, ac *auth.Context) (*dto.CatalogDTO, error) {
	var (
		wg        sync.WaitGroup
		questions []model.Question
		qErr      error
		classes   []model.Class
		cErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		questions, qErr = s.client.ListQuestions(ctx, ac.RemoteToken, "")
	}()
	go func() {
		defer wg.Done()
		classes, cErr = s.client.ListClasses(ctx, ac.RemoteToken)
	}()
	wg.Wait()

	if qErr != nil {
		log.Error().Err(qErr).Msg("Failed to fetch question bank")
		return nil, fmt.Errorf("fetching question bank: %w", qErr)
	}

	catalog := &dto.CatalogDTO{}
	if cErr != nil {
		if errors.Is(cErr, examapi.ErrUnauthorized) {
			return nil, cErr
		}
		log.Warn().Err(cErr).Msg("Class fetch failed, using built-in class list")
		classes = defaultClasses()
		catalog.ClassesFallback = true
	}

	if err := copier.Copy(&catalog.Questions, &questions); err != nil {
		return nil, fmt.Errorf("preparing question bank: %w", err)
	}
	if err := copier.Copy(&catalog.Classes, &classes); err != nil {
		return nil, fmt.Errorf("preparing class list: %w", err)
	}
	if catalog.Questions == nil {
		catalog.Questions = []dto.BankQuestionDTO{}
	}
	if catalog.Classes == nil {
		catalog.Classes = []dto.ClassDTO{}
	}
	return catalog, nil
}

func parseFormTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (s *creationService) Create(ctx context.Context, ac *auth.Context, req dto.CreateExamRequest) error {
	var problems []string
	if strings.TrimSpace(req.Name) == "" {
		problems = append(problems, "Please fill in the exam name")
	}
	start, startErr := parseFormTime(req.Start)
	if req.Start == "" || startErr != nil {
		problems = append(problems, "Please provide a valid start time")
	}
	end, endErr := parseFormTime(req.End)
	if req.End == "" || endErr != nil {
		problems = append(problems, "Please provide a valid end time")
	}
	if req.SchoolClassID == "" {
		problems = append(problems, "Please choose a class")
	}
	if len(req.QuestionIDs) == 0 {
		problems = append(problems, "Please select at least one question")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	payload := examapi.CreateExamPayload{
		Name:          req.Name,
		Start:         start.UTC(),
		End:           end.UTC(),
		QuestionIDs:   req.QuestionIDs,
		SchoolClassID: req.SchoolClassID,
	}
	if err := s.client.CreateExam(ctx, ac.RemoteToken, payload); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create exam")
		return err
	}
	log.Info().Str("name", req.Name).Int("questionCount", len(req.QuestionIDs)).Msg("Exam created")
	return nil
}
