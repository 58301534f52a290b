package directus

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/directusclient"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (integrator.Backend, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Directus: config.Directus{
			URL:               server.URL,
			StaticToken:       "static-token",
			ProfileCollection: "crm_profiles",
		},
		Profile: config.Profile{
			NameFields: []string{"nome_estabelecimento", "first_name"},
			LogoFields: []string{"logo", "logo_url", "avatar"},
		},
	}

	client := directusclient.NewClient(cfg.Directus, server.Client())
	return New(cfg, client), server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestDirectusService_Authenticate(t *testing.T) {
	t.Run("Login com sucesso não envia o token estático", func(t *testing.T) {
		service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			assert.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "admin@loja.com", body["email"])

			writeJSON(w, http.StatusOK, `{"data":{"access_token":"access","refresh_token":"refresh","expires":900000}}`)
		})

		before := time.Now()
		tokens, err := service.Authenticate(context.Background(), "admin@loja.com", "segredo")

		require.NoError(t, err)
		assert.Equal(t, "access", tokens.AccessToken)
		assert.Equal(t, "refresh", tokens.RefreshToken)
		require.NotNil(t, tokens.ExpiresAt)
		assert.WithinDuration(t, before.Add(15*time.Minute), *tokens.ExpiresAt, 5*time.Second)
	})

	t.Run("Credenciais inválidas trazem a mensagem do backend", func(t *testing.T) {
		service, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, `{"errors":[{"message":"Invalid user credentials.","extensions":{"code":"INVALID_CREDENTIALS"}}]}`)
		})

		_, err := service.Authenticate(context.Background(), "admin@loja.com", "errada")

		var backendErr *integrator.BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Equal(t, http.StatusUnauthorized, backendErr.StatusCode)
		assert.Equal(t, "Invalid user credentials.", backendErr.Message)
	})

	t.Run("Erro sem corpo usa mensagem genérica", func(t *testing.T) {
		service, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := service.Authenticate(context.Background(), "admin@loja.com", "segredo")

		var backendErr *integrator.BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Equal(t, integrator.DefaultErrorMessage, backendErr.Message)
	})
}

func TestDirectusService_CurrentIdentity(t *testing.T) {
	service, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "*,role.name", r.URL.Query().Get("fields"))

		writeJSON(w, http.StatusOK, `{"data":{
			"id":"u-1",
			"email":"loja@delivery.com",
			"first_name":"Pizzaria Central",
			"avatar":"file-1",
			"collection_name":"pedidos_central",
			"role":{"name":"Administrator"}
		}}`)
	})

	identity, err := service.CurrentIdentity(context.Background(), "user-token")

	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "loja@delivery.com", identity.Email)
	assert.Equal(t, "Pizzaria Central", identity.Name)
	assert.Equal(t, "Administrator", identity.RoleName)
	assert.Equal(t, "pedidos_central", identity.Collection)
	assert.True(t, identity.IsAdmin())
	require.NotNil(t, identity.LogoURL)
	assert.Equal(t, server.URL+"/assets/file-1", *identity.LogoURL)
}

func TestDirectusService_ListRecords(t *testing.T) {
	t.Run("Coleção com nome inválido não chega ao backend", func(t *testing.T) {
		service, _ := newTestService(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("requisição inesperada")
		})

		_, err := service.ListRecords(context.Background(), "token", "../users", domain.RecordQuery{})
		assert.ErrorIs(t, err, integrator.ErrInvalidCollection)
	})

	t.Run("Lista todos os itens com ordenação e filtro", func(t *testing.T) {
		service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/items/pedidos", r.URL.Path)
			query := r.URL.Query()
			assert.Equal(t, "-1", query.Get("limit"))
			assert.Equal(t, "-data_pedido", query.Get("sort"))
			assert.Equal(t, "enviado", query.Get("filter[status][_eq]"))

			writeJSON(w, http.StatusOK, `{"data":[{"id":1,"valor_do_produto":"R$ 12,50"},{"id":2,"valor_do_produto":30}]}`)
		})

		records, err := service.ListRecords(context.Background(), "token", "pedidos", domain.RecordQuery{
			Sort:   []string{"-data_pedido"},
			Filter: map[string]string{"status": "enviado"},
		})

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "R$ 12,50", records[0]["valor_do_produto"])
		assert.Equal(t, 30.0, records[1]["valor_do_produto"])
	})
}

func TestDirectusService_StoreObject(t *testing.T) {
	service, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Logo - Pizzaria Central", r.FormValue("title"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		writeJSON(w, http.StatusOK, `{"data":{"id":"file-9","type":"image/png"}}`)
	})

	stored, err := service.StoreObject(context.Background(), "token", domain.ImageFile{
		Title:       "Logo - Pizzaria Central",
		Filename:    "logo.png",
		ContentType: "image/png",
		Size:        4,
		Content:     []byte("\x89PNG"),
	})

	require.NoError(t, err)
	assert.Equal(t, "file-9", stored.Key)
	assert.Equal(t, server.URL+"/assets/file-9", stored.URL)
}

func TestDirectusService_PublicProfile(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/crm_profiles", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, `{"data":[{"id":1,"nome_estabelecimento":"Lanchonete da Praça","logo_url":"https://cdn.exemplo.com/logo.png"}]}`)
	})

	profile, err := service.PublicProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Lanchonete da Praça", profile.Name)
	require.NotNil(t, profile.LogoURL)
	assert.Equal(t, "https://cdn.exemplo.com/logo.png", *profile.LogoURL)
}

func TestDirectusService_CreateRosterEntry(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		assert.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "role-user", body["role"])
		assert.Equal(t, "Pizzaria Central", body["first_name"])
		assert.Equal(t, "file-1", body["avatar"])
		assert.NotContains(t, body, "collection_name")

		writeJSON(w, http.StatusOK, `{"data":{"id":"u-2","email":"nova@loja.com","first_name":"Pizzaria Central"}}`)
	})

	logo := "file-1"
	entry, err := service.CreateRosterEntry(context.Background(), "token", domain.NewRosterEntry{
		Email:       "nova@loja.com",
		Password:    "123456",
		DisplayName: "Pizzaria Central",
		RoleID:      "role-user",
		RoleName:    "User",
		LogoRef:     &logo,
	})

	require.NoError(t, err)
	assert.Equal(t, "u-2", entry.ID)
	assert.Equal(t, "User", entry.RoleName)
}

func TestDirectusService_UpdateProfile_Nome(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		expected map[string]any
	}{
		{
			name:     "Grava no campo personalizado lido pelo perfil",
			user:     `{"data":{"id":"u-1","nome_estabelecimento":"Nome antigo","first_name":"Zé"}}`,
			expected: map[string]any{"nome_estabelecimento": "Pizzaria Central"},
		},
		{
			name:     "Sem campo personalizado usa first_name",
			user:     `{"data":{"id":"u-1","first_name":"Nome antigo"}}`,
			expected: map[string]any{"first_name": "Pizzaria Central"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patched map[string]any
			service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/me", r.URL.Path)
				switch r.Method {
				case http.MethodGet:
					writeJSON(w, http.StatusOK, tt.user)
				case http.MethodPatch:
					assert.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&patched))
					writeJSON(w, http.StatusOK, `{"data":{}}`)
				default:
					t.Errorf("método inesperado %s", r.Method)
				}
			})

			name := "Pizzaria Central"
			err := service.UpdateProfile(context.Background(), "token", "u-1", domain.ProfileUpdate{Name: &name})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, patched)
		})
	}
}

func TestDirectusService_UpdateProfile_SemAlteracoes(t *testing.T) {
	service, _ := newTestService(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("requisição inesperada")
	})

	assert.NoError(t, service.UpdateProfile(context.Background(), "token", "u-1", domain.ProfileUpdate{}))
}

func TestDirectusService_EndSession_SemRefreshToken(t *testing.T) {
	service, _ := newTestService(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("requisição inesperada")
	})

	assert.NoError(t, service.EndSession(context.Background(), domain.AuthTokens{AccessToken: "a"}))
}
