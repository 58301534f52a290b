package supabaseclient

import (
	"context"
	"net/http"
	"net/url"
)

func (c *SupabaseClient) Select(ctx context.Context, token string, table string, params url.Values) ([]map[string]any, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if query.Get("select") == "" {
		query.Set("select", "*")
	}

	var rows []map[string]any
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"rest", "v1", table},
		query:  query,
		token:  token,
	}, &rows)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *SupabaseClient) Insert(ctx context.Context, token string, table string, row any) error {
	body, err := jsonBody(row)
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"rest", "v1", table},
		token:       token,
		body:        body,
		contentType: "application/json",
		headers:     map[string]string{"Prefer": "return=minimal"},
	}, nil)
}

// Update aplica o patch às linhas que casam com o filtro (ex.: id=eq.123)
func (c *SupabaseClient) Update(ctx context.Context, token string, table string, filter url.Values, patch any) error {
	body, err := jsonBody(patch)
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodPatch,
		path:        []string{"rest", "v1", table},
		query:       filter,
		token:       token,
		body:        body,
		contentType: "application/json",
		headers:     map[string]string{"Prefer": "return=minimal"},
	}, nil)
}
