package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/usecase"
)

// CatalogHandler serves the reference data the signup form is built from.
type CatalogHandler struct {
	AgentsUC *usecase.ListSalesAgentsUseCase
	Log      logrus.FieldLogger
}

func NewCatalogHandler(agentsUC *usecase.ListSalesAgentsUseCase, log logrus.FieldLogger) *CatalogHandler {
	return &CatalogHandler{AgentsUC: agentsUC, Log: log}
}

type SalesAgentsResponse struct {
	Agents []*entity.SalesAgent `json:"agents"`
}

type CatalogResponse struct {
	Features                []string `json:"features"`
	MonthlyInventoryOptions []string `json:"monthlyInventoryOptions"`
}

// SalesAgents handles GET /api/sales-agents.
func (h *CatalogHandler) SalesAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.AgentsUC.Execute(r.Context())
	if err != nil {
		writeError(w, h.Log, err, "Failed to fetch sales agents")
		return
	}
	writeJSON(w, http.StatusOK, SalesAgentsResponse{Agents: agents})
}

// Catalog handles GET /api/catalog.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Features:                entity.FeatureCatalog,
		MonthlyInventoryOptions: entity.MonthlyInventoryOptions,
	})
}
