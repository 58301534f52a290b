package directusclient

import (
	"context"
	"net/http"
	"net/url"

	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
)

// ListRoles lista os papéis cadastrados. Um nome não vazio filtra por igualdade.
func (c *DirectusClient) ListRoles(ctx context.Context, token string, name string) ([]directusdomain.Role, error) {
	query := url.Values{}
	query.Set("fields", "id,name")
	query.Set("limit", "-1")
	if name != "" {
		query.Set("filter[name][_eq]", name)
	}

	var response directusdomain.Envelope[[]directusdomain.Role]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"roles"},
		query:  query,
		token:  token,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}
