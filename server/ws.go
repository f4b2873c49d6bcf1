package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The web client is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientFrame is what the web client sends: a chat message, optionally
// flagged for the concise map-recommendation mode.
type clientFrame struct {
	Type                string `json:"type"`
	Message             string `json:"message"`
	IsMapRecommendation bool   `json:"isMapRecommendation,omitempty"`
}

// serverFrame is what the server answers with: a run of "chunk" frames,
// then "done" (or "error").
type serverFrame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SERVER] Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var frame clientFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[SERVER] Websocket read error: %v", err)
			}
			return
		}

		if frame.Type != "chat" || frame.Message == "" {
			if err := conn.WriteJSON(serverFrame{Type: "error", Content: "Invalid request"}); err != nil {
				return
			}
			continue
		}

		onChunk := func(chunk string) {
			conn.WriteJSON(serverFrame{Type: "chunk", Content: chunk})
		}
		var chatErr error
		if frame.IsMapRecommendation {
			_, chatErr = s.engine.MapRecommendation(r.Context(), frame.Message, onChunk)
		} else {
			_, chatErr = s.engine.Chat(r.Context(), frame.Message, onChunk)
		}
		if chatErr != nil {
			if writeErr := conn.WriteJSON(serverFrame{Type: "error", Content: "I'm temporarily unavailable. Please try again in a moment."}); writeErr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(serverFrame{Type: "done"}); err != nil {
			return
		}
	}
}
