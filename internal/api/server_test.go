package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/emanuelkel/dash-delivery-wiz/internal/api/handler"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	authmocks "github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating/mocks"
	profmocks "github.com/emanuelkel/dash-delivery-wiz/internal/usecases/profiling/mocks"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.Server{Host: "localhost", Port: "0", CORSAllowedOrigins: []string{"https://painel.loja.com"}},
		Backend: config.Backend{Provider: config.ProviderDirectus},
		Orders:  config.Orders{Timezone: "UTC"},
		Upload:  config.Upload{MaxBytes: 1024},
	}
}

func TestNew_SemAutenticador(t *testing.T) {
	_, err := New(testConfig(), nil, Services{})
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	profiler := profmocks.NewMockProfiler(ctrl)
	registry := metrics.NewRegistry()

	services := Services{Authenticator: auth, Profiler: profiler}
	h := NewHandler(testConfig(), registry, services, handler.CronJobServices{})

	t.Run("Healthcheck é público", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"backend":"directus"`)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Perfil público sem token", func(t *testing.T) {
		profiler.EXPECT().PublicProfile(gomock.Any()).Return(domain.Profile{Name: "Loja Central"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/public/profile", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Loja Central")
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Sessão válida chega ao handler", func(t *testing.T) {
		session := &domain.Session{Token: "tok", Identity: domain.Identity{ID: "u1", Name: "Loja Norte", RoleName: "User"}}
		auth.EXPECT().Authorize(gomock.Any(), "tok").Return(session, nil)
		profiler.EXPECT().GetProfile(gomock.Any(), *session).Return(&domain.Profile{Name: "Loja Norte"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_admin":false`)
	})

	t.Run("Preflight CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/login", nil)
		req.Header.Set("Origin", "https://painel.loja.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://painel.loja.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Métricas expostas", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/nada", nil)
		req.Header.Set("Authorization", "Bearer tok")
		auth.EXPECT().Authorize(gomock.Any(), "tok").Return(&domain.Session{Token: "tok"}, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
