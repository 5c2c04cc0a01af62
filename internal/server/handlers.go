package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/nexchat-app/chronex/internal/classifier"
	"github.com/nexchat-app/chronex/internal/hub"
)

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// handleChat is the main chat endpoint. The response body uses the
// same field names the remote adapter consumes, so one Chronex
// instance can serve as another's remote backend.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	uid := r.Header.Get(userIDHeader)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "no authenticated session")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "no message provided")
		return
	}

	assistant := s.session(uid)
	response := assistant.Chat(r.Context(), req.ConversationID, req.Message)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"response": response,
		"type":     assistant.Classify(req.Message),
		"model":    s.cfg.Model.Name,
	})
}

func (s *Server) handleAnalyzeCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code     string `json:"code"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	analysis := s.responder.Respond(classifier.CategoryCode,
		"analyze this "+req.Language+" code: "+req.Code)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": analysis,
		"language": s.responder.DetectLanguage(req.Language + " " + req.Code),
	})
}

func (s *Server) handleSolveMath(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Problem string `json:"problem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"solution": s.responder.Respond(classifier.CategoryMath, req.Problem),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	capabilities := []string{}
	if s.cfg.Capabilities.Chat {
		capabilities = append(capabilities, "chat")
	}
	if s.cfg.Capabilities.CodeAnalysis {
		capabilities = append(capabilities, "code_analysis")
	}
	if s.cfg.Capabilities.MathSolving {
		capabilities = append(capabilities, "math_solving")
	}

	payload := map[string]any{
		"status":       "online",
		"model":        s.cfg.Model.Name,
		"version":      "1.0",
		"capabilities": capabilities,
	}
	if snap := s.stats.Snapshot(); snap != nil {
		payload["stats"] = snap
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleCreator(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "DEMON ALEX",
		"role":    "Developer",
		"system":  "Chronex AI",
		"version": "1.0",
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	uid := r.Header.Get(userIDHeader)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "no authenticated session")
		return
	}

	s.session(uid).Reset()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Conversation history cleared",
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	uid := r.Header.Get(userIDHeader)
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "no authenticated session")
		return
	}

	history, err := s.session(uid).StoredHistory(r.Context(), r.URL.Query().Get("conversation_id"))
	if err != nil {
		s.log.Error("history read failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not read history")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"messages": history,
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// top ranks within the filtered result, so category/q still apply.
	games := s.catalog.Filter(q.Get("category"), q.Get("q"))
	if topN := q.Get("top"); topN != "" {
		if n, err := strconv.Atoi(topN); err == nil {
			games = hub.TopN(games, n)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"games": games,
		"count": len(games),
	})
}

func (s *Server) handleGameDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	game, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"game":       game,
		"players":    hub.FormatCount(game.PlayersNow),
		"avg_score":  hub.FormatCount(game.AvgScore),
		"stars":      hub.Stars(game.Rating),
		"share_text": hub.ShareText(game),
	})
}
