package directusclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
)

func fieldsQuery(fields []string) url.Values {
	query := url.Values{}
	if len(fields) > 0 {
		query.Set("fields", strings.Join(fields, ","))
	}
	return query
}

func (c *DirectusClient) GetCurrentUser(ctx context.Context, token string, fields []string) (directusdomain.User, error) {
	var response directusdomain.Envelope[directusdomain.User]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"users", "me"},
		query:  fieldsQuery(fields),
		token:  token,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *DirectusClient) UpdateCurrentUser(ctx context.Context, token string, patch map[string]any) error {
	body, err := jsonBody(patch)
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodPatch,
		path:        []string{"users", "me"},
		token:       token,
		body:        body,
		contentType: "application/json",
	}, nil)
}

func (c *DirectusClient) ListUsers(ctx context.Context, token string, fields []string) ([]directusdomain.User, error) {
	query := fieldsQuery(fields)
	query.Set("limit", "-1")

	var response directusdomain.Envelope[[]directusdomain.User]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"users"},
		query:  query,
		token:  token,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *DirectusClient) CreateUser(ctx context.Context, token string, payload map[string]any) (directusdomain.User, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return nil, err
	}

	var response directusdomain.Envelope[directusdomain.User]
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"users"},
		query:       fieldsQuery([]string{"*", "role.name"}),
		token:       token,
		body:        body,
		contentType: "application/json",
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *DirectusClient) DeleteUser(ctx context.Context, token string, id string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   []string{"users", id},
		token:  token,
	}, nil)
}
