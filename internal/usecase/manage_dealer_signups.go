package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

type ListDealerSignupsUseCase struct {
	Repo entity.DealerSignupRepository
}

func NewListDealerSignupsUseCase(repo entity.DealerSignupRepository) *ListDealerSignupsUseCase {
	return &ListDealerSignupsUseCase{Repo: repo}
}

// Execute returns signups newest first.
func (uc *ListDealerSignupsUseCase) Execute(ctx context.Context) (*DealerSignupList, error) {
	signups, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list dealer signups", Err: err}
	}
	if signups == nil {
		signups = []*entity.DealerSignup{}
	}
	return &DealerSignupList{Signups: signups, Count: len(signups)}, nil
}

type GetDealerSignupUseCase struct {
	Repo entity.DealerSignupRepository
}

func NewGetDealerSignupUseCase(repo entity.DealerSignupRepository) *GetDealerSignupUseCase {
	return &GetDealerSignupUseCase{Repo: repo}
}

func (uc *GetDealerSignupUseCase) Execute(ctx context.Context, id string) (*entity.DealerSignup, error) {
	signup, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "find dealer signup", Err: err}
	}
	if signup == nil {
		return nil, entity.ErrDealerSignupNotFound
	}
	return signup, nil
}

type UpdateDealerSignupStatusUseCase struct {
	Repo entity.DealerSignupRepository
	Log  logrus.FieldLogger
}

func NewUpdateDealerSignupStatusUseCase(repo entity.DealerSignupRepository, log logrus.FieldLogger) *UpdateDealerSignupStatusUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &UpdateDealerSignupStatusUseCase{Repo: repo, Log: log}
}

func (uc *UpdateDealerSignupStatusUseCase) Execute(ctx context.Context, input UpdateSignupStatusInput) (*entity.DealerSignup, error) {
	status, notes, err := ValidateStatusUpdate(input)
	if err != nil {
		return nil, err
	}

	signup, err := uc.Repo.UpdateStatus(ctx, input.ID, status, notes)
	if err != nil {
		return nil, &StorageError{Op: "update dealer signup status", Err: err}
	}
	if signup == nil {
		return nil, entity.ErrDealerSignupNotFound
	}

	uc.Log.WithFields(logrus.Fields{
		"signup_id": signup.ID,
		"status":    signup.Status,
	}).Info("dealer signup status updated")

	return signup, nil
}

type ListSalesAgentsUseCase struct {
	Repo entity.SalesAgentRepository
}

func NewListSalesAgentsUseCase(repo entity.SalesAgentRepository) *ListSalesAgentsUseCase {
	return &ListSalesAgentsUseCase{Repo: repo}
}

func (uc *ListSalesAgentsUseCase) Execute(ctx context.Context) ([]*entity.SalesAgent, error) {
	agents, err := uc.Repo.ListActive(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list sales agents", Err: err}
	}
	if agents == nil {
		agents = []*entity.SalesAgent{}
	}
	return agents, nil
}
