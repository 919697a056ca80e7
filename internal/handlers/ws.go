package handlers

import (
	"net/http"

	"alocacoes-admin/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return r.Header.Get("Origin") == "" || r.Header.Get("Origin") == "http://"+r.Host || r.Header.Get("Origin") == "https://"+r.Host
	},
}

// HandleWebSocket envía las notificaciones de la sesión mientras la conexión siga abierta.
func HandleWebSocket(c *gin.Context) {
	sess := currentSession(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sess.Inbox.Attach(conn)
	defer sess.Inbox.Detach(conn)

	// El cliente no manda nada; leemos sólo para detectar el cierre.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.L().Debug("websocket closed", zap.String("session", sess.ID), zap.Error(err))
			return
		}
	}
}
