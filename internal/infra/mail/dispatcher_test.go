package mail

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

// MockSender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg Message) error {
	return m.Called(msg).Error(0)
}

// MockAgentDirectory
type MockAgentDirectory struct {
	mock.Mock
}

func (m *MockAgentDirectory) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SalesAgent), args.Error(1)
}

func sampleSignup() *entity.DealerSignup {
	s := entity.NewDealerSignup()
	s.DealershipName = "Sunset <Auto>"
	s.ContactName = "Maria Lopez"
	s.Email = "maria@sunsetauto.com"
	s.Phone = "5551234567"
	s.Address = "100 Sunset Blvd"
	s.City = "Phoenix"
	s.State = "AZ"
	s.ZipCode = "85001"
	s.MonthlyInventory = "51-100"
	s.InterestedFeatures = []string{"E-Signature", "BHPH Tools"}
	return s
}

func TestDispatcher_NotifyStaffOfSignup(t *testing.T) {
	sender := new(MockSender)
	var sent Message
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(Message)
	}).Return(nil)

	var observed []bool
	log, _ := test.NewNullLogger()
	d := NewDispatcher(sender, "help@cargram.io", log)
	d.Observe = func(kind string, delivered bool) {
		assert.Equal(t, KindStaffAlert, kind)
		observed = append(observed, delivered)
	}

	ok := d.NotifyStaffOfSignup(context.Background(), sampleSignup())

	require.True(t, ok)
	assert.Equal(t, []bool{true}, observed)
	assert.Equal(t, []string{"help@cargram.io"}, sent.To)
	assert.Equal(t, "New Dealer Signup: Sunset <Auto>", sent.Subject)
	assert.Contains(t, sent.Text, "- Dealer License: Not provided")
	assert.Contains(t, sent.Text, "- Preferred Sales Agent: No preference")
	assert.Contains(t, sent.Text, "- BHPH Tools")
	assert.Contains(t, sent.HTML, "Sunset &lt;Auto&gt;")
	assert.NotContains(t, sent.HTML, "Sunset <Auto>")
}

func TestDispatcher_NotifyStaffOfSignupNoFeatures(t *testing.T) {
	sender := new(MockSender)
	var sent Message
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(Message)
	}).Return(nil)

	s := sampleSignup()
	s.InterestedFeatures = []string{}
	log, _ := test.NewNullLogger()

	require.True(t, NewDispatcher(sender, "help@cargram.io", log).NotifyStaffOfSignup(context.Background(), s))
	assert.Contains(t, sent.Text, "No specific features selected")
}

func TestDispatcher_NotifyStaffOfSignupAgentName(t *testing.T) {
	agentID := "7c0e8a52-3c1e-4a55-9d0e-4f1c2b8a9e10"
	cases := []struct {
		name   string
		agent  *entity.SalesAgent
		err    error
		expect string
	}{
		{"known agent", &entity.SalesAgent{ID: agentID, FirstName: "Alice", LastName: "Ng", Email: "alice@cargram.io"}, nil,
			"- Preferred Sales Agent: Alice Ng (alice@cargram.io)"},
		{"removed agent", nil, nil, "- Preferred Sales Agent: Unknown agent (id: " + agentID + ")"},
		{"lookup error", nil, errors.New("connection refused"), "- Preferred Sales Agent: Unknown agent (id: " + agentID + ")"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			var sent Message
			sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
				sent = args.Get(0).(Message)
			}).Return(nil)
			agents := new(MockAgentDirectory)
			agents.On("FindByID", mock.Anything, agentID).Return(tc.agent, tc.err)

			s := sampleSignup()
			s.SalesAgentID = &agentID
			log, _ := test.NewNullLogger()
			d := NewDispatcher(sender, "help@cargram.io", log)
			d.Agents = agents

			require.True(t, d.NotifyStaffOfSignup(context.Background(), s))
			assert.Contains(t, sent.Text, tc.expect)
			if tc.agent != nil {
				assert.Contains(t, sent.HTML, "Alice Ng (alice@cargram.io)")
				assert.NotContains(t, sent.Text, agentID)
			}
			agents.AssertExpectations(t)
		})
	}
}

func TestDispatcher_NotifyStaffOfSignupNoPreferenceSkipsLookup(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything).Return(nil)
	agents := new(MockAgentDirectory)
	log, _ := test.NewNullLogger()
	d := NewDispatcher(sender, "help@cargram.io", log)
	d.Agents = agents

	require.True(t, d.NotifyStaffOfSignup(context.Background(), sampleSignup()))
	agents.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDispatcher_SendApplicantWelcome(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.MatchedBy(func(msg Message) bool {
		return len(msg.To) == 1 && msg.To[0] == "maria@sunsetauto.com" &&
			msg.Subject == "Welcome to Cargram Pro - Next Steps"
	})).Return(nil)

	log, _ := test.NewNullLogger()
	ok := NewDispatcher(sender, "help@cargram.io", log).
		SendApplicantWelcome(context.Background(), "maria@sunsetauto.com", "Sunset Auto")

	assert.True(t, ok)
	sender.AssertExpectations(t)
}

// TestDispatcher_SendFailure - delivery errors are logged and reported as false
func TestDispatcher_SendFailure(t *testing.T) {
	sender := new(MockSender)
	sender.On("Send", mock.Anything).Return(errors.New("dial tcp: connection refused"))

	var observed []bool
	log, hook := test.NewNullLogger()
	d := NewDispatcher(sender, "help@cargram.io", log)
	d.Observe = func(kind string, delivered bool) { observed = append(observed, delivered) }

	assert.False(t, d.SendApplicantWelcome(context.Background(), "maria@sunsetauto.com", "Sunset Auto"))
	assert.False(t, d.NotifyStaffOfSignup(context.Background(), sampleSignup()))
	assert.Equal(t, []bool{false, false}, observed)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "failed to send email", hook.LastEntry().Message)
}

func TestDispatcher_NilSignup(t *testing.T) {
	sender := new(MockSender)
	log, _ := test.NewNullLogger()

	assert.False(t, NewDispatcher(sender, "help@cargram.io", log).NotifyStaffOfSignup(context.Background(), nil))
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestNewEmailSender(t *testing.T) {
	s, err := NewEmailSender("smtp.example.com", 587, "user", "pass", "Cargram <noreply@cargram.io>")
	require.NoError(t, err)
	assert.Equal(t, "noreply@cargram.io", s.fromAddress)
	assert.Equal(t, "Cargram", s.fromName)

	_, err = NewEmailSender("smtp.example.com", 587, "", "", "not an address")
	assert.Error(t, err)
}
