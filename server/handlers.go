package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/lab1702/cellspread/game"
	"github.com/lab1702/cellspread/logger"
)

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v any) {
	// Enable CORS for cross-origin requests
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Component("http").WithError(err).Warn("encode response")
	}
}

// HandleActors returns every actor, or one actor when ?id= is given
func (s *Server) HandleActors(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		writeJSON(w, http.StatusOK, s.state().Actors)
		return
	}

	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	s.simMu.Lock()
	info, err := s.sim.World().Actor(game.ActorID(id))
	s.simMu.Unlock()
	if errors.Is(err, ErrUnknownActor) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// HandleState returns the current world snapshot
func (s *Server) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state())
}

// HandleImpacts returns every impact record of the run so far
func (s *Server) HandleImpacts(w http.ResponseWriter, r *http.Request) {
	s.simMu.Lock()
	records := s.sim.Records()
	s.simMu.Unlock()
	writeJSON(w, http.StatusOK, records)
}

// HandleFire queues a detonation from a JSON FireRequest body
func (s *Server) HandleFire(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST required"})
		return
	}

	var req FireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid fire request"})
		return
	}
	if err := s.Fire(req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnknownWarhead) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

// Routes registers every endpoint of the server on mux
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.HandleWebSocket)
	mux.HandleFunc("/api/actors", s.HandleActors)
	mux.HandleFunc("/api/state", s.HandleState)
	mux.HandleFunc("/api/impacts", s.HandleImpacts)
	mux.HandleFunc("/api/fire", s.HandleFire)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}
