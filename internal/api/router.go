package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"worklog.service/internal/api/handler"
	"worklog.service/internal/core"
	"worklog.service/internal/ports/messaging"
)

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(service *core.SummaryService, producer messaging.ReportProducer) *mux.Router {

	summaryHandler := handler.SummaryHandler{
		Service:  service,
		Producer: producer,
	}

	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/summaries", summaryHandler.Summarize).Methods(http.MethodPost)
	api.HandleFunc("/summaries/erp", summaryHandler.SummarizeFromERP).Methods(http.MethodGet)
	api.HandleFunc("/reports", summaryHandler.RequestReport).Methods(http.MethodPost)
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	return r
}
