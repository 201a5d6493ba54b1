package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes wires the session CRUD surface onto the router.
func (s *Store) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/session", s.getHandler).Methods(http.MethodGet)
	r.HandleFunc("/session", s.headHandler).Methods(http.MethodHead)
	r.HandleFunc("/session", s.putHandler).Methods(http.MethodPut, http.MethodPost)
	r.HandleFunc("/session", s.deleteHandler).Methods(http.MethodDelete)
}

func subscriberURL(r *http.Request) string {
	return r.URL.Query().Get("subscriber_url")
}

func (s *Store) getHandler(w http.ResponseWriter, r *http.Request) {
	url := subscriberURL(r)
	if url == "" {
		http.Error(w, "missing required param: subscriber_url", http.StatusBadRequest)
		return
	}
	sess, err := s.Get(r.Context(), url)
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("subscriber_url", url).Msg("session lookup failed")
		http.Error(w, "session lookup failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sess)
}

func (s *Store) headHandler(w http.ResponseWriter, r *http.Request) {
	url := subscriberURL(r)
	if url == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ok, err := s.Exists(r.Context(), url)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Store) putHandler(w http.ResponseWriter, r *http.Request) {
	var sess Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if sess.SubscriberURL == "" {
		sess.SubscriberURL = subscriberURL(r)
	}
	if sess.SubscriberURL == "" {
		http.Error(w, "subscriber_url is required", http.StatusBadRequest)
		return
	}
	if err := s.Set(r.Context(), &sess); err != nil {
		log.Error().Err(err).Str("subscriber_url", sess.SubscriberURL).Msg("session save failed")
		http.Error(w, "session save failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sess)
}

func (s *Store) deleteHandler(w http.ResponseWriter, r *http.Request) {
	url := subscriberURL(r)
	if url == "" {
		http.Error(w, "missing required param: subscriber_url", http.StatusBadRequest)
		return
	}
	if err := s.Delete(r.Context(), url); err != nil {
		log.Error().Err(err).Str("subscriber_url", url).Msg("session delete failed")
		http.Error(w, "session delete failed", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
