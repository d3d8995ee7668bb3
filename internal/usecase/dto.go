package usecase

import "github.com/xavierca1/cargram-leads/internal/entity"

type SubscribeInput struct {
	Email string `json:"email"`
}

type SubscribeOutput struct {
	SubscriptionID string
	Message        string
}

type DealerSignupInput struct {
	DealershipName     string   `json:"dealershipName"`
	ContactName        string   `json:"contactName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	ZipCode            string   `json:"zipCode"`
	DealerLicense      *string  `json:"dealerLicense,omitempty"`
	MonthlyInventory   string   `json:"monthlyInventory"`
	CurrentSoftware    *string  `json:"currentSoftware,omitempty"`
	InterestedFeatures []string `json:"interestedFeatures,omitempty"`
	SalesAgentID       *string  `json:"salesAgentId,omitempty"`
}

type DealerSignupOutput struct {
	SignupID string
	Message  string
}

type UpdateSignupStatusInput struct {
	ID     string  `json:"-"`
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

type DealerSignupList struct {
	Signups []*entity.DealerSignup
	Count   int
}
