package listview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func TestRefetchAndTable(t *testing.T) {
	calls := 0
	v := New[item](func(context.Context) ([]item, error) {
		calls++
		return []item{{1, "uno"}, {2, "dos"}}, nil
	}, func(i item) int { return i.ID }, []Column[item]{
		{ID: "id", Label: "ID", Value: func(i item) any { return i.ID }},
		{ID: "name", Label: "Name", Render: func(i item) string { return "<" + i.Name + ">" }},
	})

	require.NoError(t, v.Refetch(context.Background()))
	assert.Equal(t, 1, calls)

	table := v.Table()
	assert.Equal(t, []string{"ID", "Name"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, TableRow{Key: 2, Cells: []string{"2", "<dos>"}}, table.Rows[1])
}

func TestRefetchFailureKeepsRows(t *testing.T) {
	fail := false
	v := New[item](func(context.Context) ([]item, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return []item{{1, "uno"}}, nil
	}, func(i item) int { return i.ID }, nil)

	require.NoError(t, v.Refetch(context.Background()))
	fail = true
	assert.EqualError(t, v.Refetch(context.Background()), "boom")
	assert.Len(t, v.Rows(), 1)
	assert.EqualError(t, v.Err(), "boom")
}

func TestRun(t *testing.T) {
	v := New[item](func(context.Context) ([]item, error) {
		return []item{{7, "siete"}}, nil
	}, func(i item) int { return i.ID }, nil)
	require.NoError(t, v.Refetch(context.Background()))

	var got item
	actions := []Action[item]{{
		Name: "Edit",
		Run: func(_ context.Context, row item, _ func(context.Context) error) error {
			got = row
			return nil
		},
	}}

	require.NoError(t, v.Run(context.Background(), actions, "Edit", 7))
	assert.Equal(t, "siete", got.Name)

	err := v.Run(context.Background(), actions, "Edit", 8)
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Error(t, v.Run(context.Background(), actions, "Nope", 7))
}

func TestLoadReusesRowsAfterRefetch(t *testing.T) {
	calls := 0
	v := New[item](func(context.Context) ([]item, error) {
		calls++
		return []item{{calls, "x"}}, nil
	}, func(i item) int { return i.ID }, nil)
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	assert.Equal(t, 1, calls)

	// una acción recarga la lista; el render siguiente no vuelve a leer
	require.NoError(t, v.Refetch(ctx))
	require.NoError(t, v.Load(ctx))
	assert.Equal(t, 2, calls)

	require.NoError(t, v.Load(ctx))
	assert.Equal(t, 3, calls)
}
