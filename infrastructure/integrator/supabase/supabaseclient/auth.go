package supabaseclient

import (
	"context"
	"net/http"
	"net/url"

	supabasedomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase/domain"
)

func (c *SupabaseClient) SignInWithPassword(ctx context.Context, email, password string) (*supabasedomain.Session, error) {
	body, err := jsonBody(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var session supabasedomain.Session
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"auth", "v1", "token"},
		query:       url.Values{"grant_type": []string{"password"}},
		body:        body,
		contentType: "application/json",
	}, &session)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *SupabaseClient) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"auth", "v1", "logout"},
		token:  accessToken,
	}, nil)
}

func (c *SupabaseClient) GetUser(ctx context.Context, accessToken string) (*supabasedomain.User, error) {
	var user supabasedomain.User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"auth", "v1", "user"},
		token:  accessToken,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *SupabaseClient) AdminListUsers(ctx context.Context) ([]supabasedomain.User, error) {
	token, err := c.ServiceToken()
	if err != nil {
		return nil, err
	}

	var page supabasedomain.AdminUsersPage
	err = c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"auth", "v1", "admin", "users"},
		query:  url.Values{"per_page": []string{"1000"}},
		token:  token,
	}, &page)
	if err != nil {
		return nil, err
	}

	return page.Users, nil
}

func (c *SupabaseClient) AdminCreateUser(ctx context.Context, params supabasedomain.AdminUserParams) (*supabasedomain.User, error) {
	token, err := c.ServiceToken()
	if err != nil {
		return nil, err
	}

	body, err := jsonBody(params)
	if err != nil {
		return nil, err
	}

	var user supabasedomain.User
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        []string{"auth", "v1", "admin", "users"},
		token:       token,
		body:        body,
		contentType: "application/json",
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *SupabaseClient) AdminDeleteUser(ctx context.Context, id string) error {
	token, err := c.ServiceToken()
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   []string{"auth", "v1", "admin", "users", id},
		token:  token,
	}, nil)
}
