package directusclient

import (
	"context"
	"net/http"

	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
)

func (c *DirectusClient) Login(ctx context.Context, email, password string) (*directusdomain.AuthData, error) {
	body, err := jsonBody(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var response directusdomain.Envelope[directusdomain.AuthData]
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"auth", "login"},
		body:        body,
		contentType: "application/json",
		anonymous:   true,
	}, &response)
	if err != nil {
		return nil, err
	}

	return &response.Data, nil
}

func (c *DirectusClient) Logout(ctx context.Context, refreshToken string) error {
	body, err := jsonBody(map[string]string{
		"refresh_token": refreshToken,
	})
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"auth", "logout"},
		body:        body,
		contentType: "application/json",
		anonymous:   true,
	}, nil)
}
