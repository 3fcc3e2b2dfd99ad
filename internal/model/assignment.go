package model

import (
	"fmt"
	"time"
)

// AssignmentStatus is the client-derived lifecycle label of an exam. The
// values are the display strings the UI renders directly.
type AssignmentStatus string

const (
	StatusNew        AssignmentStatus = "Mới giao"
	StatusInProgress AssignmentStatus = "Đang làm"
	StatusSubmitted  AssignmentStatus = "Đã nộp"
	StatusGraded     AssignmentStatus = "Đã chấm điểm"
	StatusLate       AssignmentStatus = "Trễ hạn"
)

// SubjectDefault is used for every assignment because the remote exam entity
// carries no subject field.
const SubjectDefault = "Giáo dục KT-PT"

// Assignment is the display-ready projection of a remote exam entity. It is
// recomputed on every fetch and never persisted.
type Assignment struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Subject         string           `json:"subject"`
	Deadline        time.Time        `json:"deadline"`
	DeadlineDisplay string           `json:"deadline_display"`
	Status          AssignmentStatus `json:"status"`
	IsOverdue       bool             `json:"is_overdue"`
	Score           *float64         `json:"score,omitempty"`
}

// DeriveStatus computes an assignment's status from the exam window. This is
// the single derivation point shared by both dashboards. Only three of the
// five declared statuses are ever produced here; SUBMITTED and LATE have no
// derivation rule in the upstream API contract (pending product clarification).
func DeriveStatus(now, start, end time.Time) AssignmentStatus {
	switch {
	case now.After(end):
		return StatusGraded
	case !now.Before(start):
		return StatusInProgress
	default:
		return StatusNew
	}
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Chủ Nhật",
	time.Monday:    "Thứ Hai",
	time.Tuesday:   "Thứ Ba",
	time.Wednesday: "Thứ Tư",
	time.Thursday:  "Thứ Năm",
	time.Friday:    "Thứ Sáu",
	time.Saturday:  "Thứ Bảy",
}

// FormatDeadline renders a deadline the way the dashboards display it,
// e.g. "14:30 Thứ Hai, 02/06/2025".
func FormatDeadline(t time.Time) string {
	return fmt.Sprintf("%02d:%02d %s, %02d/%02d/%04d",
		t.Hour(), t.Minute(), weekdayNames[t.Weekday()], t.Day(), int(t.Month()), t.Year())
}

// ProjectAssignment builds the display projection for one remote exam.
func ProjectAssignment(now time.Time, id, name string, start, end time.Time) Assignment {
	return Assignment{
		ID:              id,
		Title:           name,
		Subject:         SubjectDefault,
		Deadline:        end,
		DeadlineDisplay: FormatDeadline(end),
		Status:          DeriveStatus(now, start, end),
		IsOverdue:       now.After(end),
	}
}
