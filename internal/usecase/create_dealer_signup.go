package usecase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

const MsgSignupReceived = "Thank you for your interest! We'll be in touch within 24 hours."

type CreateDealerSignupUseCase struct {
	Repo     entity.DealerSignupRepository
	Notifier SignupNotifier
	Log      logrus.FieldLogger

	// Background, when set, tracks in-flight notifications so the process
	// can wait for them before exiting.
	Background *sync.WaitGroup
}

func NewCreateDealerSignupUseCase(
	repo entity.DealerSignupRepository,
	notifier SignupNotifier,
	log logrus.FieldLogger,
) *CreateDealerSignupUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CreateDealerSignupUseCase{
		Repo:     repo,
		Notifier: notifier,
		Log:      log,
	}
}

func (uc *CreateDealerSignupUseCase) Execute(ctx context.Context, input DealerSignupInput) (*DealerSignupOutput, error) {
	valid, err := ValidateDealerSignupInput(input)
	if err != nil {
		return nil, err
	}

	signup := entity.NewDealerSignup()
	signup.DealershipName = valid.DealershipName
	signup.ContactName = valid.ContactName
	signup.Email = valid.Email
	signup.Phone = valid.Phone
	signup.Address = valid.Address
	signup.City = valid.City
	signup.State = valid.State
	signup.ZipCode = valid.ZipCode
	signup.DealerLicense = valid.DealerLicense
	signup.MonthlyInventory = valid.MonthlyInventory
	signup.CurrentSoftware = valid.CurrentSoftware
	signup.InterestedFeatures = valid.InterestedFeatures
	signup.SalesAgentID = valid.SalesAgentID

	if err := uc.Repo.Create(ctx, signup); err != nil {
		return nil, &StorageError{Op: "create dealer signup", Err: err}
	}

	log := uc.Log.WithFields(logrus.Fields{
		"signup_id":  signup.ID,
		"dealership": signup.DealershipName,
	})
	log.Info("dealer signup stored")

	// The signup is committed; the response no longer depends on email delivery.
	if uc.Notifier != nil {
		if uc.Background != nil {
			uc.Background.Add(1)
		}
		go func() {
			if uc.Background != nil {
				defer uc.Background.Done()
			}
			uc.notify(context.WithoutCancel(ctx), signup, log)
		}()
	}

	return &DealerSignupOutput{
		SignupID: signup.ID,
		Message:  MsgSignupReceived,
	}, nil
}

func (uc *CreateDealerSignupUseCase) notify(ctx context.Context, signup *entity.DealerSignup, log logrus.FieldLogger) {
	var wg sync.WaitGroup
	send := func(kind, recipient string, fn func() bool) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Errorf("notification %s panicked", kind)
			}
		}()
		if !fn() {
			log.WithError(&NotificationError{Kind: kind, Recipient: recipient}).Warn("notification failed")
		}
	}

	wg.Add(2)
	go send("staff_alert", "staff", func() bool {
		return uc.Notifier.NotifyStaffOfSignup(ctx, signup)
	})
	go send("applicant_welcome", signup.Email, func() bool {
		return uc.Notifier.SendApplicantWelcome(ctx, signup.Email, signup.DealershipName)
	})
	wg.Wait()
}
