package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
	"github.com/studenthub/examgate/internal/repository"
)

// QuickSessionTag groups the standalone exam page's drafts; the page has
// exactly one draft set per user, so the tag is fixed.
const QuickSessionTag = "exam_answers"

// QuickExamService backs the standalone single-page exam flow: all questions
// on one page, drafts persisted per change and restored when the page is
// reopened. Unlike the dashboard session flow, drafts here survive reloads.
type QuickExamService interface {
	Load(ctx context.Context, ac *auth.Context) (*dto.QuickExamDTO, error)
	SaveDraft(ac *auth.Context, req dto.QuickDraftRequest) error
	Review(ctx context.Context, ac *auth.Context) (*dto.QuickReviewDTO, error)
	Clear(ac *auth.Context) error
}

type quickExamService struct {
	client    examapi.Client
	draftRepo repository.DraftRepository
}

func NewQuickExamService(client examapi.Client, draftRepo repository.DraftRepository) QuickExamService {
	return &quickExamService{client: client, draftRepo: draftRepo}
}

func (s *quickExamService) Load(ctx context.Context, ac *auth.Context) (*dto.QuickExamDTO, error) {
	questions, err := s.client.ListQuestions(ctx, ac.RemoteToken, "")
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	drafts, err := s.restoreDrafts(ac.Key)
	if err != nil {
		return nil, err
	}

	result := &dto.QuickExamDTO{Drafts: drafts}
	if err := copier.Copy(&result.Questions, &questions); err != nil {
		return nil, fmt.Errorf("preparing questions: %w", err)
	}
	if result.Questions == nil {
		result.Questions = []dto.QuestionDTO{}
	}
	return result, nil
}

func (s *quickExamService) SaveDraft(ac *auth.Context, req dto.QuickDraftRequest) error {
	draft := &model.DraftAnswer{
		IdentityKey: ac.Key,
		SessionTag:  QuickSessionTag,
		QuestionID:  req.QuestionID,
		ChoiceID:    req.ChoiceID,
	}
	if err := s.draftRepo.Upsert(draft); err != nil {
		log.Error().Err(err).Str("questionID", req.QuestionID).Msg("Failed to persist draft answer")
		return fmt.Errorf("saving draft answer: %w", err)
	}
	return nil
}

func (s *quickExamService) Review(ctx context.Context, ac *auth.Context) (*dto.QuickReviewDTO, error) {
	questions, err := s.client.ListQuestions(ctx, ac.RemoteToken, "")
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	drafts, err := s.restoreDrafts(ac.Key)
	if err != nil {
		return nil, err
	}

	review := &dto.QuickReviewDTO{Total: len(questions), Rows: make([]dto.ReviewRowDTO, 0, len(questions))}
	for i, q := range questions {
		row := dto.ReviewRowDTO{Index: i, QuestionID: q.ID, Content: q.Content}
		if choiceID, ok := drafts[q.ID]; ok {
			row.Answered = true
			review.Answered++
			if choice := q.ChoiceByID(choiceID); choice != nil {
				row.AnswerContent = choice.Content
			}
		}
		review.Rows = append(review.Rows, row)
	}
	review.Unanswered = review.Total - review.Answered
	return review, nil
}

func (s *quickExamService) Clear(ac *auth.Context) error {
	if err := s.draftRepo.DeleteByOwnerAndTag(ac.Key, QuickSessionTag); err != nil {
		return fmt.Errorf("clearing draft answers: %w", err)
	}
	return nil
}

func (s *quickExamService) restoreDrafts(identityKey string) (map[string]string, error) {
	records, err := s.draftRepo.FindByOwnerAndTag(identityKey, QuickSessionTag)
	if err != nil {
		return nil, fmt.Errorf("restoring draft answers: %w", err)
	}
	drafts := make(map[string]string, len(records))
	for _, r := range records {
		drafts[r.QuestionID] = r.ChoiceID
	}
	return drafts, nil
}
