package usecase

import (
	"context"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

// SignupNotifier delivers the two post-signup emails. Both methods report
// failure through the return value and never panic on delivery errors.
type SignupNotifier interface {
	NotifyStaffOfSignup(ctx context.Context, signup *entity.DealerSignup) bool
	SendApplicantWelcome(ctx context.Context, email, dealershipName string) bool
}
