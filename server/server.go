// Package server exposes the chat engine, session memory bank, catalogs,
// and dashboard over HTTP, plus a websocket chat channel.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/nutrichat/nutrichat-go/catalog"
	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/dashboard"
	"github.com/nutrichat/nutrichat-go/engine"
	"github.com/nutrichat/nutrichat-go/memory"
	"github.com/nutrichat/nutrichat-go/semantic"
	"github.com/nutrichat/nutrichat-go/tips"
)

// Server routes HTTP requests to the chat engine and session state.
type Server struct {
	mux     *http.ServeMux
	bank    *memory.Bank
	engine  *engine.Engine
	catalog *catalog.Catalog
	index   *semantic.Index
}

// New creates the server. The semantic index may be nil; tip search then
// responds 503.
func New(bank *memory.Bank, eng *engine.Engine, cat *catalog.Catalog, index *semantic.Index) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		bank:    bank,
		engine:  eng,
		catalog: cat,
		index:   index,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("GET /ws", s.handleWebsocket)

	s.mux.HandleFunc("GET /api/session", s.handleSessionState)
	s.mux.HandleFunc("POST /api/session/location", s.handleSetLocation)
	s.mux.HandleFunc("POST /api/session/goal", s.handleSetGoal)
	s.mux.HandleFunc("POST /api/session/resources", s.handleSetResources)
	s.mux.HandleFunc("POST /api/session/messages", s.handleAddMessage)
	s.mux.HandleFunc("GET /api/session/history", s.handleHistory)
	s.mux.HandleFunc("GET /api/session/context", s.handleAIContext)
	s.mux.HandleFunc("POST /api/session/reset", s.handleReset)
	s.mux.HandleFunc("POST /api/session/renew", s.handleRenew)

	s.mux.HandleFunc("GET /api/resources", s.handleResources)
	s.mux.HandleFunc("GET /api/resources/relevant", s.handleRelevantResources)
	s.mux.HandleFunc("GET /api/geocode", s.handleGeocode)
	s.mux.HandleFunc("GET /api/tips", s.handleTips)
	s.mux.HandleFunc("GET /api/tips/search", s.handleTipSearch)
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chatRequest matches the web client's payload: either a full message list,
// or a single message flagged as a map recommendation.
type chatRequest struct {
	Messages []core.ConversationMessage `json:"messages,omitempty"`
	Message  string                     `json:"message,omitempty"`

	IsMapRecommendation bool `json:"isMapRecommendation,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	switch {
	case req.IsMapRecommendation && req.Message != "":
		s.streamChat(w, r, func(onChunk func(string)) (string, error) {
			return s.engine.MapRecommendation(r.Context(), req.Message, onChunk)
		})
	case len(req.Messages) > 0:
		s.streamChat(w, r, func(onChunk func(string)) (string, error) {
			return s.engine.ChatMessages(r.Context(), req.Messages, onChunk)
		})
	case req.Message != "":
		s.streamChat(w, r, func(onChunk func(string)) (string, error) {
			return s.engine.Chat(r.Context(), req.Message, onChunk)
		})
	default:
		writeError(w, http.StatusBadRequest, "Invalid request")
	}
}

// streamChat writes response text as chunked plain text. The error path only
// applies before the first chunk; once bytes are flushed the status is
// already committed.
func (s *Server) streamChat(w http.ResponseWriter, r *http.Request, run func(onChunk func(string)) (string, error)) {
	flusher, canFlush := w.(http.Flusher)
	wrote := false

	onChunk := func(chunk string) {
		if !wrote {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			wrote = true
		}
		if _, err := w.Write([]byte(chunk)); err != nil {
			return
		}
		if canFlush {
			flusher.Flush()
		}
	}

	reply, err := run(onChunk)
	if err != nil {
		if wrote {
			log.Printf("[SERVER] Chat stream failed mid-response: %v", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "I'm temporarily unavailable. Please try again in a moment.")
		return
	}
	if !wrote {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(reply))
	}
}

func (s *Server) handleSessionState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	var loc core.UserLocation
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.bank.SetLocation(loc)
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	var goal core.DietaryGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil || goal.Type == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.bank.SetDietaryGoal(goal)
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleSetResources(w http.ResponseWriter, r *http.Request) {
	var resources []core.FoodResource
	if err := json.NewDecoder(r.Body).Decode(&resources); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.bank.SetNearbyResources(resources)
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	var msg struct {
		Role    core.Role `json:"role"`
		Content string    `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil || msg.Content == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if msg.Role != core.RoleUser && msg.Role != core.RoleAssistant {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	s.bank.AddMessage(msg.Role, msg.Content)
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := s.bank.ConversationHistory()
	if history == nil {
		history = []core.ConversationMessage{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleAIContext(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.bank.AIContext())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.bank.Reset()
	writeJSON(w, http.StatusOK, s.bank.State())
}

func (s *Server) handleRenew(w http.ResponseWriter, r *http.Request) {
	renewed := s.bank.RenewIfExpired()
	writeJSON(w, http.StatusOK, map[string]any{
		"renewed": renewed,
		"state":   s.bank.State(),
	})
}

// handleResources queries the catalog. Filters compose left to right:
// proximity (lat/lng/radius) wins when coordinates are present, otherwise
// type, snap, and specialty filters apply in that order of precedence.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Has("lat") && q.Has("lng") {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		radius := float64(catalog.DefaultProximityRadiusKm)
		if q.Has("radius") {
			parsed, err := strconv.ParseFloat(q.Get("radius"), 64)
			if err != nil || parsed <= 0 {
				writeError(w, http.StatusBadRequest, "Invalid radius")
				return
			}
			radius = parsed
		}
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.ByProximity(lat, lng, radius)))
		return
	}

	if t := q.Get("type"); t != "" {
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.ByType(core.ResourceType(t))))
		return
	}
	if q.Get("snap") == "true" {
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.SnapAccepting()))
		return
	}
	if specialty := q.Get("specialty"); specialty != "" {
		writeJSON(w, http.StatusOK, orEmpty(s.catalog.ByCulturalSpecialty(specialty)))
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(s.catalog.All()))
}

func (s *Server) handleRelevantResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(s.bank.RelevantResources()))
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	coords, ok := s.catalog.CoordinatesForLocationName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown location")
		return
	}
	writeJSON(w, http.StatusOK, coords)
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if goal := q.Get("goal"); goal != "" {
		writeJSON(w, http.StatusOK, orEmpty(tips.ByGoal(core.GoalType(goal))))
		return
	}
	if culture := q.Get("culture"); culture != "" {
		writeJSON(w, http.StatusOK, orEmpty(tips.ByCulture(culture)))
		return
	}
	if budget := q.Get("budget"); budget != "" {
		writeJSON(w, http.StatusOK, orEmpty(tips.ByBudget(core.BudgetLevel(budget))))
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(tips.All()))
}

func (s *Server) handleTipSearch(w http.ResponseWriter, r *http.Request) {
	if s.index == nil {
		writeError(w, http.StatusServiceUnavailable, "semantic search is not configured")
		return
	}
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	results, err := s.index.Search(r.Context(), query, limit)
	if err != nil {
		log.Printf("[SERVER] Tip search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(results))
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboard.Current())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[SERVER] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// orEmpty keeps JSON arrays as [] instead of null.
func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
