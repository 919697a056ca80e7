package handlers

import (
	"net/http"

	"alocacoes-admin/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "alloc_session"
	sessionKey    = "session"
)

// SessionMiddleware busca la sesión del navegador o crea una nueva.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		if id, err := c.Cookie(sessionCookie); err == nil {
			sess, _ = store.Get(id)
		}
		if sess == nil {
			sess = store.Create(c.Request.Context())
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
