// ABOUTME: HTTP surface for the companion: form page, send_message, audio
// ABOUTME: Sessions ride a cookie; each session has its own audio artifact
package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/harper/companion/internal/chat"
	"github.com/harper/companion/internal/llm"
	"github.com/harper/companion/internal/memory"
)

const sessionCookie = "companion_session"

// Responder runs one conversation turn. Satisfied by *chat.Pipeline.
type Responder interface {
	Respond(ctx context.Context, sessionID, humanInput string) (chat.Reply, error)
}

// Dependencies are injected into the route handlers.
type Dependencies struct {
	Chat     Responder
	Sessions *memory.Sessions
	AudioDir string
}

// RegisterRoutes mounts all HTTP routes on mux.
func RegisterRoutes(mux *http.ServeMux, d Dependencies) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		handleHome(w, r)
	})

	mux.HandleFunc("/send_message", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handleSendMessage(w, r, d)
	})

	mux.HandleFunc("/audio", func(w http.ResponseWriter, r *http.Request) {
		handleAudio(w, r, d)
	})

	mux.HandleFunc("/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handleReset(w, r, d)
	})
}

// sessionID returns the session from the request cookie, minting one and
// setting the cookie when the browser shows up without it.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := memory.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func handleSendMessage(w http.ResponseWriter, r *http.Request, d Dependencies) {
	// Empty input is allowed: it is a valid degenerate turn.
	humanInput := r.FormValue("human_input")
	id := sessionID(w, r)

	reply, err := d.Chat.Respond(r.Context(), id, humanInput)
	if err != nil {
		var cerr *llm.CompletionError
		if errors.As(err, &cerr) {
			http.Error(w, "completion service unavailable", http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if reply.AudioPath != "" {
		w.Header().Set("X-Companion-Audio", "/audio")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(reply.Text))
}

func handleAudio(w http.ResponseWriter, r *http.Request, d Dependencies) {
	// WebSocket clients pass their session explicitly; the form page rides
	// the cookie.
	id := r.URL.Query().Get("session")
	if id == "" {
		if c, err := r.Cookie(sessionCookie); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		http.Error(w, "no session", http.StatusNotFound)
		return
	}
	path := filepath.Join(d.AudioDir, filepath.Base(id)+".mp3")
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

func handleReset(w http.ResponseWriter, r *http.Request, d Dependencies) {
	c, err := r.Cookie(sessionCookie)
	if err == nil && c.Value != "" && d.Sessions != nil {
		d.Sessions.Reset(c.Value)
	}
	w.WriteHeader(http.StatusNoContent)
}
