package model

// Choice is a selectable option for a question. IsCorrect comes back from the
// question bank for teacher-facing listings and must never be serialized onto
// the student-facing surface.
type Choice struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	IsCorrect *bool  `json:"isCorrect,omitempty"`
}

// Question is a remote exam question. Immutable once fetched for a session.
type Question struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Choices []Choice `json:"choices,omitempty"`
}

// ChoiceByID returns the question's choice with the given id, or nil.
func (q Question) ChoiceByID(choiceID string) *Choice {
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			return &q.Choices[i]
		}
	}
	return nil
}
