package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmailAlreadySubscribed = errors.New("email already subscribed")

type EmailSubscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	IsActive     bool      `json:"isActive"`
}

type SubscriptionStats struct {
	TotalSubscriptions  int `json:"totalSubscriptions"`
	ActiveSubscriptions int `json:"activeSubscriptions"`
}

// SubscriptionRepository is backed by a store that enforces email uniqueness.
// Create must report a duplicate as ErrEmailAlreadySubscribed.
type SubscriptionRepository interface {
	FindByEmail(ctx context.Context, email string) (*EmailSubscription, error)
	Create(ctx context.Context, sub *EmailSubscription) error
	Stats(ctx context.Context) (SubscriptionStats, error)
}

func NewEmailSubscription(email string) *EmailSubscription {
	return &EmailSubscription{
		ID:           uuid.New().String(),
		Email:        email,
		SubscribedAt: time.Now().UTC(),
		IsActive:     true,
	}
}
