// Package listview mantiene las filas de un endpoint de listado y describe
// cómo mostrarlas (columnas) y qué se puede hacer con ellas (acciones).
package listview

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Column describe una columna. Sin Render se muestra el valor de Value.
type Column[T any] struct {
	ID     string
	Label  string
	Value  func(T) any
	Render func(T) string
}

func (c Column[T]) Cell(row T) string {
	if c.Render != nil {
		return c.Render(row)
	}
	if c.Value != nil {
		return fmt.Sprint(c.Value(row))
	}
	return ""
}

// Action es una operación sobre una fila. Recibe el refetch de la lista.
type Action[T any] struct {
	Name string
	Run  func(ctx context.Context, row T, refetch func(context.Context) error) error
}

type Fetcher[T any] func(ctx context.Context) ([]T, error)

// ErrRowNotFound se devuelve cuando la fila pedida no está en la lista cargada.
var ErrRowNotFound = errors.New("row not found")

// View guarda la última carga del listado.
type View[T any] struct {
	fetch   Fetcher[T]
	key     func(T) int
	columns []Column[T]

	mu    sync.RWMutex
	rows  []T
	err   error
	fresh bool
}

func New[T any](fetch Fetcher[T], key func(T) int, columns []Column[T]) *View[T] {
	return &View[T]{fetch: fetch, key: key, columns: columns}
}

// Refetch reemplaza las filas con una nueva lectura. Si falla, las filas anteriores se conservan.
func (v *View[T]) Refetch(ctx context.Context) error {
	rows, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.err = err
	if err != nil {
		return err
	}
	v.rows = rows
	v.fresh = true
	return nil
}

// Load prepara las filas para un render. Si una acción ya recargó la lista
// desde el último Load se usan esas filas; si no, se recarga.
func (v *View[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	fresh := v.fresh
	v.fresh = false
	v.mu.Unlock()
	if fresh {
		return nil
	}

	err := v.Refetch(ctx)

	v.mu.Lock()
	v.fresh = false
	v.mu.Unlock()
	return err
}

func (v *View[T]) Rows() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]T(nil), v.rows...)
}

// Err es el error de la última carga.
func (v *View[T]) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

func (v *View[T]) Find(id int) (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, row := range v.rows {
		if v.key(row) == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Run ejecuta la acción name sobre la fila id.
func (v *View[T]) Run(ctx context.Context, actions []Action[T], name string, id int) error {
	row, ok := v.Find(id)
	if !ok {
		return errors.Wrapf(ErrRowNotFound, "id %d", id)
	}
	for _, a := range actions {
		if a.Name == name {
			return a.Run(ctx, row, v.Refetch)
		}
	}
	return errors.Errorf("unknown action %q", name)
}

// Table es la lista ya renderizada para la plantilla.
type Table struct {
	Headers []string
	Rows    []TableRow
}

type TableRow struct {
	Key   int
	Cells []string
}

func (v *View[T]) Table() Table {
	t := Table{Headers: make([]string, 0, len(v.columns))}
	for _, c := range v.columns {
		t.Headers = append(t.Headers, c.Label)
	}
	for _, row := range v.Rows() {
		tr := TableRow{Key: v.key(row), Cells: make([]string, 0, len(v.columns))}
		for _, c := range v.columns {
			tr.Cells = append(tr.Cells, c.Cell(row))
		}
		t.Rows = append(t.Rows, tr)
	}
	return t
}
