package model

// AnswerState records the selected choice for one question. Answers are keyed
// by question id in the session's answer map; a missing key means unanswered.
type AnswerState struct {
	Content  string `json:"content"`
	ChoiceID string `json:"choice_id"`
}
