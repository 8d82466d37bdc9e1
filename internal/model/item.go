package model

// Todo is the domain model for a todo entry.
// Created only by an add action; never mutated afterwards.
type Todo struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}
