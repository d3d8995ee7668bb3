package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

func newSubscribeUC(repo *MockSubscriptionRepository) *SubscribeUseCase {
	log, _ := test.NewNullLogger()
	return NewSubscribeUseCase(repo, log)
}

func TestSubscribeUseCase_Success(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("FindByEmail", mock.Anything, "new@dealer.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.EmailSubscription) bool {
		return s.Email == "new@dealer.com" && s.IsActive && s.ID != ""
	})).Return(nil)

	out, err := newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: " New@Dealer.com "})

	require.NoError(t, err)
	assert.NotEmpty(t, out.SubscriptionID)
	assert.Equal(t, MsgSubscribed, out.Message)
	repo.AssertExpectations(t)
}

// TestSubscribeUseCase_AlreadySubscribed - the second subscribe for an address is a conflict on email
func TestSubscribeUseCase_AlreadySubscribed(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("FindByEmail", mock.Anything, "dup@dealer.com").
		Return(&entity.EmailSubscription{ID: "sub-1", Email: "dup@dealer.com", IsActive: true}, nil)

	_, err := newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: "dup@dealer.com"})

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "email", cErr.Field)
	assert.Equal(t, MsgAlreadySubscribed, cErr.Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestSubscribeUseCase_RaceOnInsert - the unique index catches what the lookup missed
func TestSubscribeUseCase_RaceOnInsert(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("FindByEmail", mock.Anything, "race@dealer.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadySubscribed)

	_, err := newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: "race@dealer.com"})

	assert.True(t, IsConflictError(err))
}

func TestSubscribeUseCase_InvalidEmail(t *testing.T) {
	repo := new(MockSubscriptionRepository)

	_, err := newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: "nope"})

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestSubscribeUseCase_StorageFailures(t *testing.T) {
	dbErr := errors.New("connection refused")

	repo := new(MockSubscriptionRepository)
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, dbErr)
	_, err := newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: "a@dealer.com"})
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, dbErr)

	repo = new(MockSubscriptionRepository)
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr)
	_, err = newSubscribeUC(repo).Execute(context.Background(), SubscribeInput{Email: "a@dealer.com"})
	assert.True(t, IsStorageError(err))
}

func TestSubscriptionStatsUseCase(t *testing.T) {
	repo := new(MockSubscriptionRepository)
	repo.On("Stats", mock.Anything).Return(entity.SubscriptionStats{TotalSubscriptions: 5, ActiveSubscriptions: 4}, nil)

	stats, err := NewSubscriptionStatsUseCase(repo).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalSubscriptions)
	assert.Equal(t, 4, stats.ActiveSubscriptions)
}
