package api

import (
	"context"
	"strconv"

	"alocacoes-admin/internal/models"
)

const allocationsPath = "/allocations"

// Gateway emite las operaciones sobre /allocations. No reintenta: un create
// reintentado puede duplicar el registro.
type Gateway struct {
	client *Client
}

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) List(ctx context.Context) ([]models.Allocation, error) {
	var out []models.Allocation
	if err := g.client.Get(ctx, allocationsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Gateway) Create(ctx context.Context, payload models.AllocationPayload) (models.Allocation, error) {
	var out models.Allocation
	err := g.client.Post(ctx, allocationsPath, payload, &out)
	return out, err
}

func (g *Gateway) Update(ctx context.Context, id int, payload models.AllocationPayload) (models.Allocation, error) {
	var out models.Allocation
	err := g.client.Put(ctx, allocationPath(id), payload, &out)
	return out, err
}

func (g *Gateway) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, allocationPath(id))
}

func allocationPath(id int) string {
	return allocationsPath + "/" + strconv.Itoa(id)
}
