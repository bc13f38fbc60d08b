package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/gdavidss/musicolour/config"
	"github.com/gdavidss/musicolour/engine"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		router := mux.NewRouter().StrictSlash(true)
		router.HandleFunc("/score", handleScore(cfg)).Methods("POST")

		log.Printf("musicolour serving on %s", serveAddr)
		return http.ListenAndServe(serveAddr, cors.Default().Handler(router))
	},
}

// scoreRequest is a full note sequence replayed through a fresh engine.
// Each request is its own session; nothing persists between calls.
type scoreRequest struct {
	Notes  []engine.NoteEvent `json:"notes"`
	Params *engine.Params     `json:"params,omitempty"`
}

type scoreResponse struct {
	SessionID string              `json:"sessionId"`
	Results   []engine.Result     `json:"results"`
	Final     engine.Result       `json:"final"`
	Scale     engine.ScaleContext `json:"scale"`
}

func handleScore(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Notes) == 0 {
			http.Error(w, "notes must not be empty", http.StatusBadRequest)
			return
		}

		params := cfg.Params()
		if req.Params != nil {
			params = *req.Params
		}

		e := engine.New(params)
		results := make([]engine.Result, 0, len(req.Notes))
		for i, n := range req.Notes {
			res, err := e.ProcessNote(n.Pitch, n.TimestampMs, n.Velocity)
			if err != nil {
				http.Error(w, fmt.Sprintf("note %d: %v", i, err), http.StatusBadRequest)
				return
			}
			results = append(results, res)
		}

		resp := scoreResponse{
			SessionID: uuid.NewString(),
			Results:   results,
			Final:     results[len(results)-1],
			Scale:     e.Scale(),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
