package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrNoOrdersCollection, "usuário sem tabela de pedidos vinculada", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrNoOrdersCollection, body.Code)
	assert.Equal(t, "usuário sem tabela de pedidos vinculada", body.Message)
}

func TestStatusFor_CodigoDesconhecido(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidImage))
}

func TestCodeForBackendStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusUnauthorized, ErrInvalidToken},
		{http.StatusForbidden, ErrInsufficientPrivilege},
		{http.StatusNotFound, ErrResourceNotFound},
		{http.StatusConflict, ErrUserAlreadyExists},
		{http.StatusBadRequest, ErrInvalidRequest},
		{http.StatusInternalServerError, ErrExternalService},
		{http.StatusBadGateway, ErrExternalService},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CodeForBackendStatus(tt.status), "status %d", tt.status)
	}
}
