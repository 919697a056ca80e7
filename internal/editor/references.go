package editor

import (
	"context"
	"sync"

	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/models"

	"go.uber.org/zap"
)

// ReferenceSource lee profesores y cursos de la API remota.
type ReferenceSource interface {
	Professors(ctx context.Context) ([]models.Professor, error)
	Courses(ctx context.Context) ([]models.Course, error)
}

// References mantiene los dos slots de datos de referencia. Cada slot se
// carga por separado y un fallo en uno no afecta al otro.
type References struct {
	src      ReferenceSource
	notifier Notifier

	mu         sync.RWMutex
	professors []models.Professor
	courses    []models.Course
}

func NewReferences(src ReferenceSource, notifier Notifier) *References {
	return &References{src: src, notifier: notifier}
}

// Load lanza las dos lecturas en paralelo y espera a ambas. Sin reintentos.
func (r *References) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		professors, err := r.src.Professors(ctx)
		if err != nil {
			r.fail("professors", err)
			return
		}
		r.mu.Lock()
		r.professors = professors
		r.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		courses, err := r.src.Courses(ctx)
		if err != nil {
			r.fail("courses", err)
			return
		}
		r.mu.Lock()
		r.courses = courses
		r.mu.Unlock()
	}()

	wg.Wait()
}

func (r *References) fail(slot string, err error) {
	logger.L().Warn("reference load failed", zap.String("slot", slot), zap.Error(err))
	r.notifier.Notify(Notification{Level: LevelError, Message: err.Error()})
}

func (r *References) Professors() []models.Professor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Professor(nil), r.professors...)
}

func (r *References) Courses() []models.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Course(nil), r.courses...)
}
