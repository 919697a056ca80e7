package api

import (
	"context"

	"alocacoes-admin/internal/models"
)

// ReferenceClient lee los datos de referencia (profesores y cursos).
type ReferenceClient struct {
	client *Client
}

func NewReferenceClient(client *Client) *ReferenceClient {
	return &ReferenceClient{client: client}
}

func (r *ReferenceClient) Professors(ctx context.Context) ([]models.Professor, error) {
	var out []models.Professor
	if err := r.client.Get(ctx, "/professors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReferenceClient) Courses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := r.client.Get(ctx, "/courses", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resources junta el gateway de alocaciones y el cliente de referencia sobre un mismo Client.
type Resources struct {
	*Gateway
	*ReferenceClient
}

func NewResources(client *Client) *Resources {
	return &Resources{
		Gateway:         NewGateway(client),
		ReferenceClient: NewReferenceClient(client),
	}
}
