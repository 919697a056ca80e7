// Package session guarda el editor de alocaciones de cada navegador.
package session

import (
	"context"
	"time"

	"alocacoes-admin/internal/editor"
	"alocacoes-admin/internal/listview"
	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/models"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Session es el estado de un navegador: editor, listado y notificaciones.
type Session struct {
	ID         string
	Inbox      *Inbox
	Controller *editor.Controller
	List       *listview.View[models.Allocation]
}

// Backend son las dependencias remotas con las que se arma cada sesión.
type Backend interface {
	editor.Gateway
	editor.ReferenceSource
	List(ctx context.Context) ([]models.Allocation, error)
}

type Store struct {
	cache   *cache.Cache
	backend Backend
}

func NewStore(backend Backend, ttl time.Duration) *Store {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(id string, v interface{}) {
		if s, ok := v.(*Session); ok {
			s.Inbox.close()
		}
		logger.L().Debug("session evicted", zap.String("session", id))
	})
	return &Store{cache: c, backend: backend}
}

// Get devuelve la sesión id y renueva su vencimiento.
func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	s.cache.SetDefault(id, sess)
	return sess, true
}

// Create arma una sesión nueva y carga los datos de referencia, una sola vez.
func (s *Store) Create(ctx context.Context) *Session {
	inbox := &Inbox{}
	refs := editor.NewReferences(s.backend, inbox)
	sess := &Session{
		ID:         uuid.NewString(),
		Inbox:      inbox,
		Controller: editor.NewController(s.backend, refs, inbox),
		List:       editor.NewListView(s.backend.List),
	}
	refs.Load(ctx)

	s.cache.SetDefault(sess.ID, sess)
	logger.L().Info("session created", zap.String("session", sess.ID))
	return sess
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}
