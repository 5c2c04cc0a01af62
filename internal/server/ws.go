package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin policy is the embedding app's concern.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMessage struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type wsReply struct {
	Response string `json:"response"`
	Type     string `json:"type"`
	Model    string `json:"model"`
}

// handleWS runs the realtime chat channel: each inbound JSON frame is
// one user message, each outbound frame the assistant reply. The
// session identity comes from the header or, for browser clients that
// can't set headers on the upgrade, the uid query parameter.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	uid := r.Header.Get(userIDHeader)
	if uid == "" {
		uid = r.URL.Query().Get("uid")
	}
	if uid == "" {
		writeError(w, http.StatusUnauthorized, "no authenticated session")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	assistant := s.session(uid)
	s.log.Info("websocket chat opened", zap.String("user", uid))

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if msg.Message == "" {
			continue
		}

		response := assistant.Chat(r.Context(), msg.ConversationID, msg.Message)

		if err := conn.WriteJSON(wsReply{
			Response: response,
			Type:     string(assistant.Classify(msg.Message)),
			Model:    s.cfg.Model.Name,
		}); err != nil {
			s.log.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}
