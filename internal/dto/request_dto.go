package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateExamRequest carries the exam creation form. Field presence is checked
// in the service so violations surface as one consolidated message rather
// than per-field binding errors.
type CreateExamRequest struct {
	Name          string   `json:"name"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	SchoolClassID string   `json:"school_class_id"`
	QuestionIDs   []string `json:"question_ids"`
}

// StartSessionRequest opens an exam session for the assignment the dashboard
// handed off. StudentID is optional; when empty the caller's identity key is
// used for the submission payload.
type StartSessionRequest struct {
	StudentID string `json:"student_id"`
	ExamTitle string `json:"exam_title"`
}

type SelectAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	ChoiceID   string `json:"choice_id" binding:"required"`
	Content    string `json:"content"`
}

// NavigateRequest moves the taking-view cursor. Action is next, prev or jump;
// jump requires Index.
type NavigateRequest struct {
	Action string `json:"action" binding:"required,oneof=next prev jump"`
	Index  *int   `json:"index"`
}

// ResumeRequest returns from review to taking. A non-nil QuestionIndex lands
// the cursor on that question (the review row's edit affordance).
type ResumeRequest struct {
	QuestionIndex *int `json:"question_index"`
}

type QuickDraftRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	ChoiceID   string `json:"choice_id" binding:"required"`
}
