package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"worklog.service/internal/core"
	"worklog.service/internal/core/model"
	"worklog.service/internal/ports/messaging"
)

type SummaryHandler struct {
	Service  *core.SummaryService
	Producer messaging.ReportProducer
}

type SummarizeRequest struct {
	RawText string `json:"rawText"`
}

// SummaryResponse is the output contract. Stats is omitted when no day could
// be parsed out of the input: aggregate ratios are undefined over zero days.
type SummaryResponse struct {
	Summaries []model.DaySummary    `json:"summaries"`
	Stats     *model.AggregateStats `json:"stats,omitempty"`
}

type ReportRequest struct {
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
}

// Summarize computes day summaries from a pasted raw punch-log blob. Clients
// polling for live countdown fields just re-post the same text; the whole
// pipeline recomputes against a fresh clock sample on every call.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.RawText == "" {
		http.Error(w, "rawText is required", http.StatusBadRequest)
		return
	}

	summaries, stats := h.Service.SummarizeText(r.Context(), req.RawText)
	writeJSON(w, http.StatusOK, SummaryResponse{Summaries: summaries, Stats: stats})
}

// SummarizeFromERP fetches punch data for one employee from the ERP and runs
// the same pipeline. Query params: employeeId, from, to (YYYY-MM-DD).
func (h *SummaryHandler) SummarizeFromERP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	employeeID := q.Get("employeeId")
	if employeeID == "" {
		http.Error(w, "employeeId is required", http.StatusBadRequest)
		return
	}

	from, err := time.ParseInLocation("2006-01-02", q.Get("from"), time.Local)
	if err != nil {
		http.Error(w, "from must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation("2006-01-02", q.Get("to"), time.Local)
	if err != nil {
		http.Error(w, "to must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	summaries, stats, err := h.Service.SummarizeEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("employee_id", employeeID).Msg("ERP summary failed")
		http.Error(w, "Upstream ERP error", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Summaries: summaries, Stats: stats})
}

// RequestReport queues an emailed report for asynchronous delivery.
func (h *SummaryHandler) RequestReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.EmployeeID == "" || req.Email == "" || req.FromDate == "" || req.ToDate == "" {
		http.Error(w, "employeeId, email, fromDate and toDate are required", http.StatusBadRequest)
		return
	}

	event := messaging.ReportRequestedEvent{
		EmployeeID:  req.EmployeeID,
		Email:       req.Email,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		RequestedAt: time.Now(),
	}

	if err := h.Producer.PublishReportRequest(r.Context(), event); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to queue report request")
		http.Error(w, "Service error queuing report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{"message": "Report request accepted for asynchronous processing."})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
