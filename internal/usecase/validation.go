package usecase

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

const invalidEmailMessage = "Please enter a valid email address"

type fieldRule struct {
	field   string
	ok      bool
	message string
}

// firstViolation returns the first failing rule in declaration order.
func firstViolation(rules []fieldRule) error {
	for _, r := range rules {
		if !r.ok {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}

func ValidateSubscribeInput(input SubscribeInput) (SubscribeInput, error) {
	email := normalizeEmail(input.Email)
	if err := firstViolation([]fieldRule{
		{"email", isValidEmail(email), invalidEmailMessage},
	}); err != nil {
		return SubscribeInput{}, err
	}
	return SubscribeInput{Email: email}, nil
}

// ValidateDealerSignupInput normalizes a raw submission. Rules run in the
// order the form displays the fields and only the first failure is reported.
func ValidateDealerSignupInput(input DealerSignupInput) (DealerSignupInput, error) {
	out := DealerSignupInput{
		DealershipName:     strings.TrimSpace(input.DealershipName),
		ContactName:        strings.TrimSpace(input.ContactName),
		Email:              strings.TrimSpace(input.Email),
		Phone:              strings.TrimSpace(input.Phone),
		Address:            strings.TrimSpace(input.Address),
		City:               strings.TrimSpace(input.City),
		State:              strings.TrimSpace(input.State),
		ZipCode:            strings.TrimSpace(input.ZipCode),
		DealerLicense:      optionalString(input.DealerLicense),
		MonthlyInventory:   strings.TrimSpace(input.MonthlyInventory),
		CurrentSoftware:    optionalString(input.CurrentSoftware),
		InterestedFeatures: featureSet(input.InterestedFeatures),
		SalesAgentID:       salesAgentRef(input.SalesAgentID),
	}

	err := firstViolation([]fieldRule{
		{"dealershipName", out.DealershipName != "", "Dealership name is required"},
		{"contactName", out.ContactName != "", "Contact name is required"},
		{"email", isValidEmail(out.Email), invalidEmailMessage},
		{"phone", minLength(out.Phone, 10), "Please enter a valid phone number"},
		{"address", out.Address != "", "Address is required"},
		{"city", out.City != "", "City is required"},
		{"state", minLength(out.State, 2), "State is required"},
		{"zipCode", minLength(out.ZipCode, 5), "Please enter a valid zip code"},
		{"monthlyInventory", out.MonthlyInventory != "", "Monthly inventory is required"},
	})
	if err != nil {
		return DealerSignupInput{}, err
	}
	return out, nil
}

func ValidateStatusUpdate(input UpdateSignupStatusInput) (entity.SignupStatus, *string, error) {
	status := entity.SignupStatus(strings.TrimSpace(input.Status))
	if err := firstViolation([]fieldRule{
		{"status", status.Valid(), "Status must be one of pending, contacted, demo_scheduled, converted, rejected"},
	}); err != nil {
		return "", nil, err
	}
	return status, optionalString(input.Notes), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail accepts a bare ASCII addr-spec with a dotted hostname domain.
// Display names, address literals and non-ASCII addresses are rejected.
func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]
	return isASCII(local) && isHostname(domain)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isHostname checks letter-digit-hyphen labels, at least two of them.
func isHostname(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
				return false
			}
		}
	}
	return true
}

func minLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func salesAgentRef(id *string) *string {
	ref := optionalString(id)
	if ref == nil || *ref == entity.NoPreferenceAgent {
		return nil
	}
	return ref
}

// featureSet drops exact duplicates, keeping first-seen order.
func featureSet(features []string) []string {
	set := make([]string, 0, len(features))
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		set = append(set, f)
	}
	return set
}
