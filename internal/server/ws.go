// ABOUTME: WebSocket chat endpoint driving the same turn pipeline
// ABOUTME: One session per connection, JSON frames in and out
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/harper/companion/internal/memory"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type wsRequest struct {
	HumanInput string `json:"human_input"`
}

type wsResponse struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
	Error string `json:"error,omitempty"`
}

// RegisterWSRoutes mounts the websocket chat route on mux.
func RegisterWSRoutes(mux *http.ServeMux, d Dependencies) {
	mux.HandleFunc("/ws/chat", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer conn.Close()

		// Each connection is its own conversation.
		id := memory.NewID()
		if d.Sessions != nil {
			defer d.Sessions.Reset(id)
		}

		for {
			var req wsRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}

			reply, err := d.Chat.Respond(r.Context(), id, req.HumanInput)
			if err != nil {
				log.Printf("ws turn failed: %v", err)
				_ = conn.WriteJSON(wsResponse{Error: "completion failed"})
				continue
			}

			resp := wsResponse{Text: reply.Text}
			if reply.AudioPath != "" {
				resp.Audio = "/audio?session=" + id
			}
			_ = conn.WriteJSON(resp)
		}
	})
}
