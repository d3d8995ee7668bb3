package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/infra/http/middleware"
	"github.com/xavierca1/cargram-leads/internal/usecase"
)

type SubscriptionHandler struct {
	SubscribeUC *usecase.SubscribeUseCase
	StatsUC     *usecase.SubscriptionStatsUseCase
	Log         logrus.FieldLogger
}

func NewSubscriptionHandler(
	subscribeUC *usecase.SubscribeUseCase,
	statsUC *usecase.SubscriptionStatsUseCase,
	log logrus.FieldLogger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		SubscribeUC: subscribeUC,
		StatsUC:     statsUC,
		Log:         log,
	}
}

type SubscribeResponse struct {
	Message        string `json:"message"`
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId"`
}

// Subscribe handles POST /api/subscribe.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubscribeInput
	err := decodeJSON(w, r, &input)

	var output *usecase.SubscribeOutput
	if err == nil {
		output, err = h.SubscribeUC.Execute(r.Context(), input)
	}
	middleware.RecordSubscription(resultLabel(err))

	if err != nil {
		writeError(w, h.Log, err, "Failed to subscribe. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, SubscribeResponse{
		Message:        output.Message,
		Success:        true,
		SubscriptionID: output.SubscriptionID,
	})
}

// Stats handles GET /api/subscription-stats.
func (h *SubscriptionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
