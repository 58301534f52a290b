package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/emanuelkel/dash-delivery-wiz/internal/api/handler/router"
	authmocks "github.com/emanuelkel/dash-delivery-wiz/internal/usecases/authenticating/mocks"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
)

type stubCronJob struct {
	accept    bool
	triggered int
}

func (s *stubCronJob) TriggerManualSync() bool {
	s.triggered++
	return s.accept
}

func (s *stubCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !s.accept}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name              string
		cronType          string
		job               *stubCronJob
		expectedStatus    int
		expectedTriggered int
	}{
		{name: "Sincroniza papéis", cronType: "roles", job: &stubCronJob{accept: true}, expectedStatus: http.StatusAccepted, expectedTriggered: 1},
		{name: "Todas as crons", cronType: "all", job: &stubCronJob{accept: true}, expectedStatus: http.StatusAccepted, expectedTriggered: 1},
		{name: "Sincronização em andamento", cronType: "roles", job: &stubCronJob{accept: false}, expectedStatus: http.StatusConflict, expectedTriggered: 1},
		{name: "Tipo desconhecido", cronType: "meta", job: &stubCronJob{accept: true}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			auth.EXPECT().RequireAdmin(testAdmin).Return(nil)

			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{RoleCatalogSync: tt.job}, auth)...))

			req := httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil)
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, withSession(req, testAdmin))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedTriggered, tt.job.triggered)
		})
	}
}

func TestRunCronJob_SemTipo(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/cron//run", nil)
	rec := httptest.NewRecorder()

	RunCronJob(CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
}

func TestRunCronJob_ServicoIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().RequireAdmin(testAdmin).Return(nil)

	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{}, auth)...))

	req := httptest.NewRequest(http.MethodPost, "/v1/cron/roles/run", nil)
	rec := httptest.NewRecorder()

	rt.ServeHTTP(rec, withSession(req, testAdmin))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	rec := httptest.NewRecorder()

	GetCronStatus(CronJobServices{RoleCatalogSync: &stubCronJob{accept: true}}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, false, status["roles"]["sync_running"])
}
