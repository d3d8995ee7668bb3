package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/infra/http/middleware"
	"github.com/xavierca1/cargram-leads/internal/usecase"
)

type DealerSignupHandler struct {
	CreateUC *usecase.CreateDealerSignupUseCase
	ListUC   *usecase.ListDealerSignupsUseCase
	GetUC    *usecase.GetDealerSignupUseCase
	UpdateUC *usecase.UpdateDealerSignupStatusUseCase
	Log      logrus.FieldLogger
}

func NewDealerSignupHandler(
	createUC *usecase.CreateDealerSignupUseCase,
	listUC *usecase.ListDealerSignupsUseCase,
	getUC *usecase.GetDealerSignupUseCase,
	updateUC *usecase.UpdateDealerSignupStatusUseCase,
	log logrus.FieldLogger,
) *DealerSignupHandler {
	return &DealerSignupHandler{
		CreateUC: createUC,
		ListUC:   listUC,
		GetUC:    getUC,
		UpdateUC: updateUC,
		Log:      log,
	}
}

type DealerSignupResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	SignupID string `json:"signupId"`
}

type DealerSignupListResponse struct {
	Signups []*entity.DealerSignup `json:"signups"`
	Count   int                    `json:"count"`
}

type UpdateStatusResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Signup  *entity.DealerSignup `json:"signup"`
}

// Create handles POST /api/dealer-signup.
func (h *DealerSignupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.DealerSignupInput
	err := decodeJSON(w, r, &input)

	var output *usecase.DealerSignupOutput
	if err == nil {
		output, err = h.CreateUC.Execute(r.Context(), input)
	}
	middleware.RecordDealerSignup(resultLabel(err))

	if err != nil {
		writeError(w, h.Log, err, "Failed to submit signup. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, DealerSignupResponse{
		Message:  output.Message,
		Success:  true,
		SignupID: output.SignupID,
	})
}

// List handles GET /api/dealer-signups and its admin twin.
func (h *DealerSignupHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Failed to fetch dealer signups")
		return
	}
	writeJSON(w, http.StatusOK, DealerSignupListResponse{
		Signups: list.Signups,
		Count:   list.Count,
	})
}

// Get handles GET /api/admin/dealer-signups/{id}.
func (h *DealerSignupHandler) Get(w http.ResponseWriter, r *http.Request) {
	signup, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Log, err, "Failed to fetch dealer signup")
		return
	}
	writeJSON(w, http.StatusOK, signup)
}

// UpdateStatus handles PUT /api/admin/dealer-signups/{id}.
func (h *DealerSignupHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateSignupStatusInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, h.Log, err, "")
		return
	}
	input.ID = chi.URLParam(r, "id")

	signup, err := h.UpdateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, h.Log, err, "Failed to update dealer signup")
		return
	}

	writeJSON(w, http.StatusOK, UpdateStatusResponse{
		Success: true,
		Message: "Dealer signup updated",
		Signup:  signup,
	})
}
