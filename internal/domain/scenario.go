package domain

import "time"

// Scenario is a named, saved pair of projection input and output owned by a user
type Scenario struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	UserID    string           `json:"userId"`
	Input     RetirementInput  `json:"input"`
	Output    RetirementOutput `json:"output"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
