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

func TestListDealerSignupsUseCase(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("List", mock.Anything).Return(nil, nil).Once()

	list, err := NewListDealerSignupsUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list.Signups)
	assert.Equal(t, 0, list.Count)

	repo.On("List", mock.Anything).Return([]*entity.DealerSignup{{ID: "b"}, {ID: "a"}}, nil).Once()
	list, err = NewListDealerSignupsUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, "b", list.Signups[0].ID)
}

func TestGetDealerSignupUseCase(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("FindByID", mock.Anything, "s-1").Return(&entity.DealerSignup{ID: "s-1", DealershipName: "Sunset Auto"}, nil)

	signup, err := NewGetDealerSignupUseCase(repo).Execute(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, "Sunset Auto", signup.DealershipName)
}

func TestGetDealerSignupUseCase_UnknownID(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("FindByID", mock.Anything, "unknown-id").Return(nil, nil)

	_, err := NewGetDealerSignupUseCase(repo).Execute(context.Background(), "unknown-id")

	assert.ErrorIs(t, err, entity.ErrDealerSignupNotFound)
}

func TestGetDealerSignupUseCase_StorageFailure(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("FindByID", mock.Anything, "s-1").Return(nil, errors.New("connection reset"))

	_, err := NewGetDealerSignupUseCase(repo).Execute(context.Background(), "s-1")

	assert.True(t, IsStorageError(err))
	assert.NotErrorIs(t, err, entity.ErrDealerSignupNotFound)
}

// TestUpdateDealerSignupStatusUseCase_UnknownID - an unknown id is not found, not a storage error
func TestUpdateDealerSignupStatusUseCase_UnknownID(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("UpdateStatus", mock.Anything, "unknown-id", entity.SignupContacted, (*string)(nil)).Return(nil, nil)
	log, _ := test.NewNullLogger()

	_, err := NewUpdateDealerSignupStatusUseCase(repo, log).Execute(context.Background(),
		UpdateSignupStatusInput{ID: "unknown-id", Status: "contacted"})

	assert.ErrorIs(t, err, entity.ErrDealerSignupNotFound)
	assert.False(t, IsStorageError(err))
}

func TestUpdateDealerSignupStatusUseCase_Success(t *testing.T) {
	notes := "signed annual plan"
	repo := new(MockDealerSignupRepository)
	repo.On("UpdateStatus", mock.Anything, "s-1", entity.SignupConverted, mock.MatchedBy(func(n *string) bool {
		return n != nil && *n == notes
	})).Return(&entity.DealerSignup{ID: "s-1", Status: entity.SignupConverted, Notes: &notes}, nil)
	log, _ := test.NewNullLogger()

	signup, err := NewUpdateDealerSignupStatusUseCase(repo, log).Execute(context.Background(),
		UpdateSignupStatusInput{ID: "s-1", Status: "converted", Notes: strPtr(" signed annual plan ")})

	require.NoError(t, err)
	assert.Equal(t, entity.SignupConverted, signup.Status)
	repo.AssertExpectations(t)
}

func TestUpdateDealerSignupStatusUseCase_InvalidStatus(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	log, _ := test.NewNullLogger()

	_, err := NewUpdateDealerSignupStatusUseCase(repo, log).Execute(context.Background(),
		UpdateSignupStatusInput{ID: "s-1", Status: "lost"})

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDealerSignupStatusUseCase_StorageFailure(t *testing.T) {
	repo := new(MockDealerSignupRepository)
	repo.On("UpdateStatus", mock.Anything, "s-1", entity.SignupRejected, (*string)(nil)).Return(nil, errors.New("timeout"))
	log, _ := test.NewNullLogger()

	_, err := NewUpdateDealerSignupStatusUseCase(repo, log).Execute(context.Background(),
		UpdateSignupStatusInput{ID: "s-1", Status: "rejected"})

	assert.True(t, IsStorageError(err))
}

func TestListSalesAgentsUseCase(t *testing.T) {
	repo := new(MockSalesAgentRepository)
	repo.On("ListActive", mock.Anything).Return(nil, nil)

	agents, err := NewListSalesAgentsUseCase(repo).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, agents)
	assert.Empty(t, agents)
}

// TestListSalesAgentsUseCase_StableOrder - repeated calls return the repository order unchanged
func TestListSalesAgentsUseCase_StableOrder(t *testing.T) {
	repo := new(MockSalesAgentRepository)
	repo.On("ListActive", mock.Anything).Return([]*entity.SalesAgent{
		{ID: "a-2", FirstName: "Ana", LastName: "Diaz"},
		{ID: "a-1", FirstName: "Ben", LastName: "Diaz"},
		{ID: "a-3", FirstName: "Cal", LastName: "Evans"},
	}, nil)
	uc := NewListSalesAgentsUseCase(repo)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)

	ids := func(agents []*entity.SalesAgent) []string {
		out := make([]string, 0, len(agents))
		for _, a := range agents {
			out = append(out, a.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a-2", "a-1", "a-3"}, ids(first))
	assert.Equal(t, ids(first), ids(second))
	repo.AssertNumberOfCalls(t, "ListActive", 2)
}
