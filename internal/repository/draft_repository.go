package repository

import (
	"github.com/studenthub/examgate/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DraftRepository interface {
	Upsert(draft *model.DraftAnswer) error
	FindByOwnerAndTag(identityKey, sessionTag string) ([]model.DraftAnswer, error)
	DeleteByOwnerAndTag(identityKey, sessionTag string) error
}

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &draftRepository{db: db}
}

// Upsert replaces the stored choice for (owner, tag, question); a re-selected
// question keeps a single row.
func (r *draftRepository) Upsert(draft *model.DraftAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_key"}, {Name: "session_tag"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"choice_id", "updated_at"}),
	}).Create(draft).Error
}

func (r *draftRepository) FindByOwnerAndTag(identityKey, sessionTag string) ([]model.DraftAnswer, error) {
	var drafts []model.DraftAnswer
	err := r.db.
		Where("identity_key = ? AND session_tag = ?", identityKey, sessionTag).
		Order("created_at ASC").
		Find(&drafts).Error
	return drafts, err
}

func (r *draftRepository) DeleteByOwnerAndTag(identityKey, sessionTag string) error {
	return r.db.
		Where("identity_key = ? AND session_tag = ?", identityKey, sessionTag).
		Delete(&model.DraftAnswer{}).Error
}
