package entity

import (
	"context"
	"strings"
	"time"
)

// NoPreferenceAgent is what the signup form sends when the dealer did not pick an agent.
const NoPreferenceAgent = "no-preference"

type SalesAgent struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type SalesAgentRepository interface {
	ListActive(ctx context.Context) ([]*SalesAgent, error)
	// FindByID returns (nil, nil) when no agent has the id.
	FindByID(ctx context.Context, id string) (*SalesAgent, error)
}

// DisplayName is "First Last".
func (a *SalesAgent) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
