package proxy

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// RegisterRoutes wires the thin forwarding surface: protocol actions go to
// the mock service, subscriber key/mapping management to the registry.
func RegisterRoutes(r *mux.Router, mock, registry *Client) {
	r.HandleFunc("/proxy/mock/{action}", forwardHandler(mock, "action")).Methods(http.MethodPost)
	r.HandleFunc("/proxy/registry/{path:.*}", forwardHandler(registry, "path")).Methods(http.MethodGet, http.MethodPost)
}

func forwardHandler(client *Client, pathVar string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := mux.Vars(r)[pathVar]
		if path == "" {
			http.Error(w, "missing upstream path", http.StatusBadRequest)
			return
		}

		resp, err := client.Forward(r.Context(), r.Method, path, r.URL.Query(), r.Body, r.Header)
		if err != nil {
			status := StatusForError(err)
			log.Warn().Err(err).Str("upstream", client.Name()).Int("status", status).Msg("upstream forward failed")
			http.Error(w, err.Error(), status)
			return
		}
		defer resp.Body.Close()

		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.Copy(w, resp.Body)
	}
}
