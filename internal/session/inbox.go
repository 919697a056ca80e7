package session

import (
	"sync"
	"time"

	"alocacoes-admin/internal/editor"
	"alocacoes-admin/internal/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// writeWait limita cada escritura al websocket.
const writeWait = 5 * time.Second

// Inbox recibe las notificaciones de una sesión. Todas quedan pendientes para
// el próximo render: las acciones del panel terminan en un redirect y la
// página que abrió el websocket se descarga. Si hay un websocket conectado
// además se envían en el momento.
type Inbox struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	pending []editor.Notification
}

func (in *Inbox) Notify(n editor.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.pending = append(in.pending, n)
	if in.conn == nil {
		return
	}
	in.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := in.conn.WriteJSON(n); err != nil {
		logger.L().Debug("websocket push failed", zap.Error(err))
		in.conn = nil
	}
}

// Attach asocia conn. Lo pendiente se entrega con el render, no por el websocket.
func (in *Inbox) Attach(conn *websocket.Conn) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.conn = conn
}

// Detach suelta conn si sigue siendo la conexión activa.
func (in *Inbox) Detach(conn *websocket.Conn) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.conn == conn {
		in.conn = nil
	}
}

func (in *Inbox) close() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.conn != nil {
		in.conn.Close()
		in.conn = nil
	}
}

// Drain devuelve y vacía las notificaciones pendientes.
func (in *Inbox) Drain() []editor.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.pending
	in.pending = nil
	return out
}
