package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

// MockSubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailSubscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entity.EmailSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Stats(ctx context.Context) (entity.SubscriptionStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.SubscriptionStats), args.Error(1)
}

// MockDealerSignupRepository
type MockDealerSignupRepository struct {
	mock.Mock
}

func (m *MockDealerSignupRepository) Create(ctx context.Context, signup *entity.DealerSignup) error {
	args := m.Called(ctx, signup)
	return args.Error(0)
}

func (m *MockDealerSignupRepository) List(ctx context.Context) ([]*entity.DealerSignup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.DealerSignup), args.Error(1)
}

func (m *MockDealerSignupRepository) FindByID(ctx context.Context, id string) (*entity.DealerSignup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DealerSignup), args.Error(1)
}

func (m *MockDealerSignupRepository) UpdateStatus(ctx context.Context, id string, status entity.SignupStatus, notes *string) (*entity.DealerSignup, error) {
	args := m.Called(ctx, id, status, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DealerSignup), args.Error(1)
}

// MockSalesAgentRepository
type MockSalesAgentRepository struct {
	mock.Mock
}

func (m *MockSalesAgentRepository) ListActive(ctx context.Context) ([]*entity.SalesAgent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SalesAgent), args.Error(1)
}

func (m *MockSalesAgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesAgent), args.Error(1)
}

// MockSignupNotifier
type MockSignupNotifier struct {
	mock.Mock
}

func (m *MockSignupNotifier) NotifyStaffOfSignup(ctx context.Context, signup *entity.DealerSignup) bool {
	args := m.Called(ctx, signup)
	return args.Bool(0)
}

func (m *MockSignupNotifier) SendApplicantWelcome(ctx context.Context, email, dealershipName string) bool {
	args := m.Called(ctx, email, dealershipName)
	return args.Bool(0)
}

func strPtr(s string) *string {
	return &s
}
