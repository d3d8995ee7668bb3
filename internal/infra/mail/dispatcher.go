package mail

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

const (
	KindStaffAlert       = "staff_alert"
	KindApplicantWelcome = "applicant_welcome"

	notProvided = "Not provided"
)

type MessageSender interface {
	Send(msg Message) error
}

// AgentDirectory resolves the sales agent a dealer asked for.
type AgentDirectory interface {
	FindByID(ctx context.Context, id string) (*entity.SalesAgent, error)
}

// Dispatcher renders and sends the post-signup emails. Failures are logged
// and reported as false; nothing is retried.
type Dispatcher struct {
	Sender       MessageSender
	StaffAddress string
	Log          logrus.FieldLogger
	// Agents, when set, turns the preferred agent id into a name in staff alerts.
	Agents AgentDirectory
	// Observe, when set, is told the outcome of every attempt.
	Observe func(kind string, delivered bool)
}

func NewDispatcher(sender MessageSender, staffAddress string, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		Sender:       sender,
		StaffAddress: staffAddress,
		Log:          log,
	}
}

func (d *Dispatcher) NotifyStaffOfSignup(ctx context.Context, signup *entity.DealerSignup) bool {
	if signup == nil {
		return d.done(KindStaffAlert, d.StaffAddress, fmt.Errorf("no signup given"))
	}

	data := staffAlertData(signup)
	data.SalesAgent = d.salesAgentLabel(ctx, signup.SalesAgentID)

	text, html, err := render(KindStaffAlert, data)
	if err != nil {
		return d.done(KindStaffAlert, d.StaffAddress, err)
	}

	err = d.Sender.Send(Message{
		To:      []string{d.StaffAddress},
		Subject: fmt.Sprintf("New Dealer Signup: %s", signup.DealershipName),
		Text:    text,
		HTML:    html,
	})
	return d.done(KindStaffAlert, d.StaffAddress, err)
}

func (d *Dispatcher) SendApplicantWelcome(ctx context.Context, email, dealershipName string) bool {
	text, html, err := render(KindApplicantWelcome, WelcomeEmailData{DealershipName: dealershipName})
	if err != nil {
		return d.done(KindApplicantWelcome, email, err)
	}

	err = d.Sender.Send(Message{
		To:      []string{email},
		Subject: "Welcome to Cargram Pro - Next Steps",
		Text:    text,
		HTML:    html,
	})
	return d.done(KindApplicantWelcome, email, err)
}

func (d *Dispatcher) done(kind, recipient string, err error) bool {
	delivered := err == nil
	if d.Observe != nil {
		d.Observe(kind, delivered)
	}

	log := d.Log.WithFields(logrus.Fields{"kind": kind, "recipient": recipient})
	if !delivered {
		log.WithError(err).Error("failed to send email")
		return false
	}
	log.Info("email sent")
	return true
}

func staffAlertData(s *entity.DealerSignup) StaffAlertData {
	return StaffAlertData{
		DealershipName:     s.DealershipName,
		ContactName:        s.ContactName,
		Email:              s.Email,
		Phone:              s.Phone,
		Address:            s.Address,
		City:               s.City,
		State:              s.State,
		ZipCode:            s.ZipCode,
		DealerLicense:      orNotProvided(s.DealerLicense),
		MonthlyInventory:   s.MonthlyInventory,
		CurrentSoftware:    orNotProvided(s.CurrentSoftware),
		InterestedFeatures: s.InterestedFeatures,
	}
}

// salesAgentLabel never fails the alert: a lookup error or a stale id falls
// back to showing the raw id.
func (d *Dispatcher) salesAgentLabel(ctx context.Context, id *string) string {
	if id == nil || *id == "" {
		return "No preference"
	}
	unknown := fmt.Sprintf("Unknown agent (id: %s)", *id)
	if d.Agents == nil {
		return unknown
	}

	agent, err := d.Agents.FindByID(ctx, *id)
	if err != nil {
		d.Log.WithError(err).WithField("sales_agent_id", *id).Warn("sales agent lookup failed")
		return unknown
	}
	if agent == nil {
		return unknown
	}
	return fmt.Sprintf("%s (%s)", agent.DisplayName(), agent.Email)
}

func orNotProvided(s *string) string {
	return orValue(s, notProvided)
}

func orValue(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
