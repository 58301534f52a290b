package directusclient

import (
	"context"
	"net/http"
	"net/url"
)

// ListItems lê os itens de uma coleção. Sem "limit" nos parâmetros, todos os itens são retornados.
func (c *DirectusClient) ListItems(ctx context.Context, token string, collection string, params url.Values) ([]map[string]any, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if query.Get("limit") == "" {
		query.Set("limit", "-1")
	}

	var response struct {
		Data []map[string]any `json:"data"`
	}
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"items", collection},
		query:  query,
		token:  token,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}
