package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/vish0009/MWPL-NSE/internal/dashboard"
)

type pageData struct {
	Provider       string
	Disabled       bool
	DisabledReason string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := pageData{Provider: s.config.AI.Provider}
	if s.initErr != nil {
		data.Disabled = true
		data.DisabledReason = s.initErr.Error()
	}

	tmpl, err := template.ParseFiles("templates/dashboard.html")
	if err != nil {
		s.logger.Error("parse template", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("execute template", "error", err)
	}
}

// reportResponse carries one cycle's outcome to the page script. Absent
// sections are empty strings; the script keeps their containers hidden.
type reportResponse struct {
	Status    string `json:"status"`
	Summary   string `json:"summary,omitempty"`
	Sectors   string `json:"sectors,omitempty"`
	MWPL      string `json:"mwpl,omitempty"`
	Citations string `json:"citations,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.initErr != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, reportResponse{
			Status: dashboard.StateFailed.String(),
			Error:  dashboard.FailureMessage(s.initErr),
		})
		return
	}

	view, err := s.controller.Refresh(r.Context())
	if err != nil {
		s.writeJSON(w, http.StatusBadGateway, reportResponse{
			Status: dashboard.StateFailed.String(),
			Error:  dashboard.FailureMessage(err),
		})
		return
	}

	s.writeJSON(w, http.StatusOK, reportResponse{
		Status:    dashboard.StateSuccess.String(),
		Summary:   string(view.Summary),
		Sectors:   string(view.Sectors),
		MWPL:      string(view.Stocks),
		Citations: string(view.Citations),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	logs, err := s.repo.GetRecentFetches(20)
	if err != nil {
		s.logger.Error("get fetch history", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, logs)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
