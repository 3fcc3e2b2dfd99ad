package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
)

// ErrDeleteNotConfirmed means the caller skipped the confirmation step; no
// request reaches the remote API in that case.
var ErrDeleteNotConfirmed = errors.New("exam deletion requires confirmation")

// DashboardService backs both dashboards: assignment listing with the
// client-derived status projection, and the teacher's delete action.
type DashboardService interface {
	ListAssignments(ctx context.Context, ac *auth.Context, search string) ([]dto.AssignmentDTO, error)
	DeleteExam(ctx context.Context, ac *auth.Context, examID string, confirmed bool) error
}

type dashboardService struct {
	client examapi.Client
}

func NewDashboardService(client examapi.Client) DashboardService {
	return &dashboardService{client: client}
}

// ListAssignments fetches the current exam list and projects it into
// display-ready assignments. The projection is recomputed on every call and
// never cached; search filters on the title, case-insensitively.
func (s *dashboardService) ListAssignments(ctx context.Context, ac *auth.Context, search string) ([]dto.AssignmentDTO, error) {
	exams, err := s.client.ListExams(ctx, ac.RemoteToken)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch assignments from remote API")
		return nil, fmt.Errorf("fetching assignments: %w", err)
	}

	now := time.Now()
	assignments := make([]model.Assignment, 0, len(exams))
	for _, exam := range exams {
		assignments = append(assignments, model.ProjectAssignment(now, exam.ID, exam.Name, exam.Start, exam.End))
	}
	assignments = FilterAssignments(assignments, search)

	var dtos []dto.AssignmentDTO
	if err := copier.Copy(&dtos, &assignments); err != nil {
		return nil, fmt.Errorf("preparing assignment list: %w", err)
	}
	if dtos == nil {
		dtos = []dto.AssignmentDTO{}
	}
	return dtos, nil
}

// FilterAssignments keeps the assignments whose title contains the query as a
// case-insensitive substring. An empty query keeps everything.
func FilterAssignments(assignments []model.Assignment, search string) []model.Assignment {
	if search == "" {
		return assignments
	}
	needle := strings.ToLower(search)
	filtered := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if strings.Contains(strings.ToLower(a.Title), needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// DeleteExam sends the destructive request only after explicit confirmation.
// Success does not touch any local list; the dashboard refetches instead.
func (s *dashboardService) DeleteExam(ctx context.Context, ac *auth.Context, examID string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.client.DeleteExam(ctx, ac.RemoteToken, examID); err != nil {
		log.Error().Err(err).Str("examID", examID).Msg("Failed to delete exam")
		return err
	}
	log.Info().Str("examID", examID).Msg("Exam deleted")
	return nil
}
