// Package editor coordina el listado de alocaciones con el formulario de
// alta/edición: borrador, estado del editor y datos de referencia.
package editor

import (
	"context"
	"fmt"
	"sync"

	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/models"

	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	stateClosed = "closed"
	stateOpen   = "open"

	eventCreate = "create"
	eventEdit   = "edit"
	eventClose  = "close"
)

const (
	MsgCreated   = "¡Alocación creada con éxito!"
	MsgUpdated   = "¡Alocación actualizada con éxito!"
	RemovePrompt = "¿Seguro que querés eliminar esta alocación?"
	titleCreate  = "Create Allocation"
	titleUpdate  = "Update Allocation"
	ActionEdit   = "Edit"
	ActionRemove = "Remove"
)

// ErrEditorClosed se devuelve al modificar o guardar sin editor abierto.
var ErrEditorClosed = errors.New("editor is closed")

// Gateway persiste alocaciones en la API remota.
type Gateway interface {
	Create(ctx context.Context, payload models.AllocationPayload) (models.Allocation, error)
	Update(ctx context.Context, id int, payload models.AllocationPayload) (models.Allocation, error)
	Delete(ctx context.Context, id int) error
}

// Controller es el estado del editor de una sesión. Sólo cambia a través de
// OpenCreate, OpenEdit, Update, Save y Cancel.
type Controller struct {
	mu       sync.Mutex
	FSM      *fsm.FSM
	form     *Form
	refs     *References
	gateway  Gateway
	notifier Notifier
}

func NewController(gateway Gateway, refs *References, notifier Notifier) *Controller {
	c := &Controller{
		form:     NewForm(),
		refs:     refs,
		gateway:  gateway,
		notifier: notifier,
	}

	c.FSM = fsm.NewFSM(
		stateClosed,
		fsm.Events{
			{Name: eventCreate, Src: []string{stateClosed, stateOpen}, Dst: stateOpen},
			{Name: eventEdit, Src: []string{stateClosed, stateOpen}, Dst: stateOpen},
			{Name: eventClose, Src: []string{stateOpen}, Dst: stateClosed},
		},
		fsm.Callbacks{
			"before_" + eventCreate: c.beforeCreate,
			"before_" + eventEdit:   c.beforeEdit,
			"enter_" + stateClosed:  c.onEnterClosed,
		},
	)

	return c
}

func (c *Controller) beforeCreate(_ context.Context, _ *fsm.Event) {
	c.form.Reset()
}

func (c *Controller) beforeEdit(_ context.Context, e *fsm.Event) {
	if len(e.Args) != 1 {
		e.Cancel(errors.New("edit needs the selected row"))
		return
	}
	row, ok := e.Args[0].(models.Allocation)
	if !ok {
		e.Cancel(errors.Errorf("edit got %T, want models.Allocation", e.Args[0]))
		return
	}
	c.form.Hydrate(row)
}

func (c *Controller) onEnterClosed(_ context.Context, _ *fsm.Event) {
	c.form.Reset()
}

// fire dispara un evento. Reabrir un editor ya abierto no es un error.
func (c *Controller) fire(ctx context.Context, event string, args ...any) error {
	err := c.FSM.Event(ctx, event, args...)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return err
	}
	return nil
}

// OpenCreate abre el editor con el borrador vacío, sin importar lo que tenía antes.
func (c *Controller) OpenCreate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire(ctx, eventCreate)
}

// OpenEdit abre el editor con el borrador hidratado desde row.
func (c *Controller) OpenEdit(ctx context.Context, row models.Allocation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire(ctx, eventEdit, row)
}

// Update aplica cambios de campo al borrador. Sin validación.
func (c *Controller) Update(u models.DraftUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.FSM.Is(stateOpen) {
		return ErrEditorClosed
	}
	c.form.Apply(u)
	return nil
}

// Cancel cierra el editor y descarta el borrador.
func (c *Controller) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.FSM.Is(stateOpen) {
		return nil
	}
	return c.fire(ctx, eventClose)
}

// Save persiste el borrador: create si no tiene id, update si lo tiene. Si la
// API falla el editor queda abierto con el borrador intacto y no se recarga la lista.
func (c *Controller) Save(ctx context.Context, refetch Refetch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.FSM.Is(stateOpen) {
		return ErrEditorClosed
	}

	draft := c.form.Draft()
	payload := PayloadFromDraft(draft)

	var (
		err error
		msg string
	)
	if draft.IsNew() {
		_, err = c.gateway.Create(ctx, payload)
		msg = MsgCreated
	} else {
		_, err = c.gateway.Update(ctx, draft.ID, payload)
		msg = MsgUpdated
	}
	if err != nil {
		logger.L().Warn("allocation save failed", zap.Int("id", draft.ID), zap.Error(err))
		c.notify(LevelError, err.Error())
		return err
	}

	c.notify(LevelSuccess, msg)
	if err := c.fire(ctx, eventClose); err != nil {
		return err
	}

	// La mutación ya ocurrió; si falla la recarga la lista queda desactualizada.
	if refetch != nil {
		if err := refetch(ctx); err != nil {
			c.notify(LevelError, err.Error())
		}
	}
	return nil
}

// Remove pide confirmación y elimina row. No toca el borrador.
func (c *Controller) Remove(ctx context.Context, row models.Allocation, confirmer Confirmer, refetch Refetch) error {
	if confirmer == nil || !confirmer.Confirm(RemovePrompt) {
		return nil
	}

	if err := c.gateway.Delete(ctx, row.ID); err != nil {
		logger.L().Warn("allocation delete failed", zap.Int("id", row.ID), zap.Error(err))
		c.notify(LevelError, err.Error())
		return err
	}

	if refetch != nil {
		if err := refetch(ctx); err != nil {
			c.notify(LevelError, err.Error())
			return err
		}
	}

	c.notify(LevelInfo, RemovedMessage(row))
	return nil
}

// RemovedMessage nombra el registro eliminado.
func RemovedMessage(row models.Allocation) string {
	return fmt.Sprintf("La alocación #%d (%s – %s) fue eliminada", row.ID, row.Professor.Name, row.Course.Name)
}

func (c *Controller) notify(level Level, msg string) {
	c.notifier.Notify(Notification{Level: level, Message: msg})
}

func (c *Controller) IsOpen() bool {
	return c.FSM.Is(stateOpen)
}

func (c *Controller) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form.Draft().IsNew() {
		return titleCreate
	}
	return titleUpdate
}

func (c *Controller) Draft() models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Draft()
}

func (c *Controller) References() *References {
	return c.refs
}

// View es lo que necesita la plantilla del modal.
type View struct {
	Open       bool
	Title      string
	Draft      models.Draft
	Professors []models.Professor
	Courses    []models.Course
	Weekdays   []models.Weekday
}

func (c *Controller) View() View {
	return View{
		Open:       c.IsOpen(),
		Title:      c.Title(),
		Draft:      c.Draft(),
		Professors: c.refs.Professors(),
		Courses:    c.refs.Courses(),
		Weekdays:   models.Weekdays,
	}
}
