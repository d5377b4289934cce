package services

import (
	"net/http"

	"reelrank/config"

	"github.com/gorilla/sessions"
)

const sessionName = "reelrank-session"

// SessionStore holds the cookie store used for form flash messages.
type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(cfg *config.Config) *SessionStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

// AddFlash queues a message to show on the next rendered page.
func (s *SessionStore) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return err
	}
	session.AddFlash(message)
	return session.Save(r, w)
}

// Flashes drains and returns any queued messages.
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes are consumed on read; save to clear them from the cookie
	_ = session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
