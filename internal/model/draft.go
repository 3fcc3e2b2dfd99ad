package model

import (
	"time"

	"gorm.io/gorm"
)

// DraftAnswer is one persisted draft selection in the standalone exam-page
// flow. Drafts for an identity are grouped under a fixed session tag and
// restored when the page is reopened; the dashboard exam-session flow never
// touches this table.
type DraftAnswer struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	IdentityKey string         `json:"identity_key" gorm:"not null;index:idx_draft_owner_tag_question,unique"`
	SessionTag  string         `json:"session_tag" gorm:"not null;index:idx_draft_owner_tag_question,unique"`
	QuestionID  string         `json:"question_id" gorm:"not null;index:idx_draft_owner_tag_question,unique"`
	ChoiceID    string         `json:"choice_id" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
