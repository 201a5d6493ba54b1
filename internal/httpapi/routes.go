package httpapi

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/ONDC-Official/automation-frontend-sub001/internal/events"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/model"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/seller"
	"github.com/ONDC-Official/automation-frontend-sub001/internal/validate"
)

// go-playground/validator/v10: struct validator for onboarding input.
var structValidate = validator.New()

// Server holds the generation and validation surface of the workbench.
type Server struct {
	generator *seller.Generator
	gate      *validate.Service
	publisher *events.Publisher // nil disables eventing
	archive   RejectionWriter   // nil disables rejection logging
}

// RejectionWriter is the slice of the archive the validate endpoint needs.
type RejectionWriter interface {
	WriteRejection(meta map[string]string, scope, reason string) error
}

func NewServer(generator *seller.Generator, gate *validate.Service, publisher *events.Publisher, archive RejectionWriter) *Server {
	return &Server{generator: generator, gate: gate, publisher: publisher, archive: archive}
}

// RegisterRoutes wires the seller-simulation routes.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/seller/on_search", s.onSearchHandler).Methods(http.MethodPost)
	r.HandleFunc("/ondc/validate", s.validateHandler).Methods(http.MethodPost)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// onSearchHandler turns seller-onboarding input into on_search payloads.
// An array-valued domain field produces one payload per domain.
func (s *Server) onSearchHandler(w http.ResponseWriter, r *http.Request) {
	reader := io.Reader(r.Body)
	if enc := r.Header.Get("Content-Encoding"); strings.EqualFold(enc, "gzip") {
		gr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "failed to decompress gzip body", http.StatusBadRequest)
			return
		}
		defer gr.Close()
		reader = gr
	}

	var data model.SellerData
	if err := json.NewDecoder(reader).Decode(&data); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := structValidate.Struct(data); err != nil {
		http.Error(w, "input validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	if data.Domain.Multi {
		payloads, err := s.generator.GenerateAll(&data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, payload := range payloads {
			s.publishGenerated(ctx, data.ProviderName, payload)
		}
		writeResponse(w, r, map[string]any{"data": payloads, "type": "multi-domain"})
		return
	}

	payload, err := s.generator.Generate(&data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.publishGenerated(ctx, data.ProviderName, payload)
	writeResponse(w, r, map[string]any{"data": payload, "type": "single-domain"})
}

// publishGenerated is fire-and-forget: eventing must never fail a
// generation request.
func (s *Server) publishGenerated(ctx context.Context, providerName string, payload *model.OnSearchEnvelope) {
	if s.publisher == nil || payload == nil {
		return
	}
	items := 0
	if len(payload.Message.Catalog.BPPProviders) > 0 {
		items = len(payload.Message.Catalog.BPPProviders[0].Items)
	}
	evt := model.CatalogGenerated{
		TransactionID: payload.Context.TransactionID,
		MessageID:     payload.Context.MessageID,
		ProviderName:  providerName,
		Domain:        payload.Context.Domain,
		City:          payload.Context.City,
		Items:         items,
		Timestamp:     payload.Context.Timestamp,
		Payload:       payload,
	}
	if err := s.publisher.PublishCatalogGenerated(ctx, evt); err != nil {
		log.Warn().Err(err).Str("transaction_id", evt.TransactionID).Msg("failed to publish generated-catalog event")
	}
}

// validateHandler runs the schema gate over an arbitrary on_search payload
// and records rejections in the archive.
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	rejections, err := s.gate.ValidateOnSearch(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.archive != nil && len(rejections) > 0 {
		meta := envelopeMeta(body)
		for _, rej := range rejections {
			if err := s.archive.WriteRejection(meta, rej.Scope, rej.Reason); err != nil {
				log.Warn().Err(err).Msg("failed to archive rejection")
				break
			}
		}
	}

	writeResponse(w, r, map[string]any{
		"valid":      len(rejections) == 0,
		"rejections": rejections,
	})
}

func envelopeMeta(body []byte) map[string]string {
	var env struct {
		Context struct {
			TransactionID string `json:"transaction_id"`
			MessageID     string `json:"message_id"`
		} `json:"context"`
	}
	_ = json.Unmarshal(body, &env)
	return map[string]string{
		"transaction_id": env.Context.TransactionID,
		"message_id":     env.Context.MessageID,
	}
}

// writeResponse gzips when the client advertises support; generated
// catalogs get large.
func writeResponse(w http.ResponseWriter, r *http.Request, body any) {
	w.Header().Set("Content-Type", "application/json")
	if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.Header().Set("Content-Encoding", "gzip")
		gw := gzip.NewWriter(w)
		defer gw.Close()
		_ = json.NewEncoder(gw).Encode(body)
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}
