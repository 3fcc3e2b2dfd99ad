package dto

// SessionStateDTO is the taking view's state: the current question, cursor
// position, progress and the sidebar's answered markers.
type SessionStateDTO struct {
	SessionID       string          `json:"session_id"`
	ExamID          string          `json:"exam_id"`
	ExamTitle       string          `json:"exam_title"`
	Step            string          `json:"step"`
	UsingFallback   bool            `json:"using_fallback"`
	TotalQuestions  int             `json:"total_questions"`
	CurrentIndex    int             `json:"current_index"`
	CurrentQuestion QuestionDTO     `json:"current_question"`
	SelectedChoice  string          `json:"selected_choice,omitempty"`
	Progress        int             `json:"progress"`
	Answered        map[string]bool `json:"answered"`
}

type ReviewRowDTO struct {
	Index         int    `json:"index"`
	QuestionID    string `json:"question_id"`
	Content       string `json:"content"`
	Answered      bool   `json:"answered"`
	AnswerContent string `json:"answer_content,omitempty"`
}

// ReviewDTO is the review view: counts plus the per-question recap.
type ReviewDTO struct {
	SessionID  string         `json:"session_id"`
	Answered   int            `json:"answered"`
	Total      int            `json:"total"`
	Unanswered int            `json:"unanswered"`
	Rows       []ReviewRowDTO `json:"rows"`
}

// SubmitResultDTO signals a successful submission; RefreshAssignments cues
// the dashboard to refetch its list.
type SubmitResultDTO struct {
	Submitted          bool `json:"submitted"`
	RefreshAssignments bool `json:"refresh_assignments"`
}

// QuickExamDTO is the standalone exam page: all questions at once plus the
// restored draft selections (question id → choice id).
type QuickExamDTO struct {
	Questions []QuestionDTO     `json:"questions"`
	Drafts    map[string]string `json:"drafts"`
}

type QuickReviewDTO struct {
	Answered   int            `json:"answered"`
	Total      int            `json:"total"`
	Unanswered int            `json:"unanswered"`
	Rows       []ReviewRowDTO `json:"rows"`
}
