package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AssignmentDTO is the display projection of a remote exam for either
// dashboard. Status is derived client-side; the API never sends one.
type AssignmentDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Subject         string    `json:"subject"`
	Deadline        time.Time `json:"deadline"`
	DeadlineDisplay string    `json:"deadline_display"`
	Status          string    `json:"status"`
	IsOverdue       bool      `json:"is_overdue"`
	Score           *float64  `json:"score,omitempty"`
}

// ChoiceDTO is the student-facing choice shape. It intentionally has no
// correctness flag.
type ChoiceDTO struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type QuestionDTO struct {
	ID      string      `json:"id"`
	Content string      `json:"content"`
	Choices []ChoiceDTO `json:"choices,omitempty"`
}

// BankChoiceDTO is the teacher-facing choice shape from the question bank.
type BankChoiceDTO struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

type BankQuestionDTO struct {
	ID      string          `json:"id"`
	Content string          `json:"content"`
	Choices []BankChoiceDTO `json:"choices,omitempty"`
}

type ClassDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogDTO feeds the exam creation form: the question bank and the class
// list, fetched independently. ClassesFallback marks the built-in class list
// substituted after a class fetch failure.
type CatalogDTO struct {
	Questions       []BankQuestionDTO `json:"questions"`
	Classes         []ClassDTO        `json:"classes"`
	ClassesFallback bool              `json:"classes_fallback"`
}
