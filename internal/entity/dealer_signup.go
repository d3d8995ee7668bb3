package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDealerSignupNotFound = errors.New("dealer signup not found")

type SignupStatus string

const (
	SignupPending       SignupStatus = "pending"
	SignupContacted     SignupStatus = "contacted"
	SignupDemoScheduled SignupStatus = "demo_scheduled"
	SignupConverted     SignupStatus = "converted"
	SignupRejected      SignupStatus = "rejected"
)

func (s SignupStatus) Valid() bool {
	switch s {
	case SignupPending, SignupContacted, SignupDemoScheduled, SignupConverted, SignupRejected:
		return true
	}
	return false
}

type DealerSignup struct {
	ID                 string       `json:"id"`
	DealershipName     string       `json:"dealershipName"`
	ContactName        string       `json:"contactName"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	ZipCode            string       `json:"zipCode"`
	DealerLicense      *string      `json:"dealerLicense"`
	MonthlyInventory   string       `json:"monthlyInventory"`
	CurrentSoftware    *string      `json:"currentSoftware"`
	InterestedFeatures []string     `json:"interestedFeatures"`
	SalesAgentID       *string      `json:"salesAgentId"`
	SignupAt           time.Time    `json:"signupAt"`
	Status             SignupStatus `json:"status"`
	Notes              *string      `json:"notes"`
}

// DealerSignupRepository persists signups. FindByID and UpdateStatus return
// (nil, nil) when the id is unknown.
type DealerSignupRepository interface {
	Create(ctx context.Context, signup *DealerSignup) error
	List(ctx context.Context) ([]*DealerSignup, error)
	FindByID(ctx context.Context, id string) (*DealerSignup, error)
	UpdateStatus(ctx context.Context, id string, status SignupStatus, notes *string) (*DealerSignup, error)
}

func NewDealerSignup() *DealerSignup {
	return &DealerSignup{
		ID:                 uuid.New().String(),
		InterestedFeatures: []string{},
		SignupAt:           time.Now().UTC(),
		Status:             SignupPending,
	}
}
