package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The console is a local development tool.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWS runs an interactive console over a websocket: each incoming
// event is handled like a chat message and the reply is written back.
func (h *coachHandler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req eventRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed: %v", err)
			}
			return
		}

		req.Text = strings.TrimSpace(req.Text)
		if req.UserID == "" || req.Text == "" {
			if err := conn.WriteJSON(map[string]string{"error": "userId and text are required"}); err != nil {
				return
			}
			continue
		}

		reply := h.svc.HandleMessage(r.Context(), req.UserID, req.Username, req.Text)
		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("[ws] write failed: %v", err)
			return
		}
	}
}
