package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CookieName carries the signed session token.
	CookieName = "jobpulse_session"
	// stateKey is the gin context key holding the resolved *State.
	stateKey = "session_state"
)

// Middleware resolves the caller's session, minting a fresh one when the
// cookie is missing or no longer valid. The state is stashed in the gin
// context for handlers.
func Middleware(tokens *TokenService, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string

		if cookie, err := c.Cookie(CookieName); err == nil {
			if claims, err := tokens.ValidateToken(cookie); err == nil {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			if token, err := tokens.GenerateToken(sessionID); err == nil {
				c.SetCookie(CookieName, token, tokens.expiryHours*3600, "/", "", false, true)
			}
		}

		c.Set(stateKey, store.Get(sessionID))
		c.Next()
	}
}

// FromContext retrieves the session state resolved by Middleware.
func FromContext(c *gin.Context) *State {
	state, exists := c.Get(stateKey)
	if !exists {
		return nil
	}
	return state.(*State)
}
