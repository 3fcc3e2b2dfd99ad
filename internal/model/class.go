package model

// Class is a school class an exam can be assigned to.
type Class struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
