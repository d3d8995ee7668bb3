package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const maxClientField = 4096

// ClientLogHandler receives error reports from the landing page.
type ClientLogHandler struct {
	Log logrus.FieldLogger
}

func NewClientLogHandler(log logrus.FieldLogger) *ClientLogHandler {
	return &ClientLogHandler{Log: log}
}

type ClientErrorReport struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Stack     string `json:"stack"`
	Context   string `json:"context"`
	URL       string `json:"url"`
	UserAgent string `json:"userAgent"`
}

// Handle handles POST /api/logs/error. Reports are never echoed back.
func (h *ClientLogHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var report ClientErrorReport
	if err := decodeJSON(w, r, &report); err != nil {
		writeError(w, h.Log, err, "")
		return
	}

	h.Log.WithFields(logrus.Fields{
		"source":      "client",
		"reported_at": truncate(report.Timestamp),
		"context":     truncate(report.Context),
		"url":         truncate(report.URL),
		"user_agent":  truncate(report.UserAgent),
		"stack":       truncate(report.Stack),
	}).Warn(truncate(report.Message))

	w.WriteHeader(http.StatusNoContent)
}

func truncate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxClientField {
		return s
	}
	cut := maxClientField
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
