package archive

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes wires the archive read API under /api/data.
func (s *QueryService) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/data").Subrouter()
	api.HandleFunc("/payloads", s.listHandler).Methods(http.MethodGet)
	api.HandleFunc("/payloads/{transaction_id}", s.getHandler).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.statsHandler).Methods(http.MethodGet)
}

func (s *QueryService) listHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}
	offset := 0
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	summaries, err := s.ListPayloads(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("archive listing failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": summaries})
}

func (s *QueryService) getHandler(w http.ResponseWriter, r *http.Request) {
	transactionID := mux.Vars(r)["transaction_id"]
	evt, err := s.GetPayload(r.Context(), transactionID)
	if errors.Is(err, os.ErrNotExist) {
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "payload not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("transaction_id", transactionID).Msg("archive lookup failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": evt})
}

func (s *QueryService) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("archive stats failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": stats})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
