package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"alocacoes-admin/internal/editor"
	"alocacoes-admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct{}

func (fakeBackend) Create(context.Context, models.AllocationPayload) (models.Allocation, error) {
	return models.Allocation{}, nil
}

func (fakeBackend) Update(context.Context, int, models.AllocationPayload) (models.Allocation, error) {
	return models.Allocation{}, nil
}

func (fakeBackend) Delete(context.Context, int) error { return nil }

func (fakeBackend) List(context.Context) ([]models.Allocation, error) { return nil, nil }

func (fakeBackend) Professors(context.Context) ([]models.Professor, error) {
	return []models.Professor{{ID: 1, Name: "Ana"}}, nil
}

func (fakeBackend) Courses(context.Context) ([]models.Course, error) {
	return nil, errors.New("courses unavailable")
}

func TestCreateLoadsReferences(t *testing.T) {
	store := NewStore(fakeBackend{}, time.Minute)
	sess := store.Create(context.Background())

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, []models.Professor{{ID: 1, Name: "Ana"}}, sess.Controller.References().Professors())
	assert.Empty(t, sess.Controller.References().Courses())
	assert.Equal(t, []editor.Notification{{Level: editor.LevelError, Message: "courses unavailable"}}, sess.Inbox.Drain())
	assert.Empty(t, sess.Inbox.Drain())

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Count())

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewStore(fakeBackend{}, time.Minute)
	a := store.Create(context.Background())
	b := store.Create(context.Background())

	require.NoError(t, a.Controller.OpenCreate(context.Background()))
	assert.True(t, a.Controller.IsOpen())
	assert.False(t, b.Controller.IsOpen())
}
