package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/apiErrors"
	"github.com/emanuelkel/dash-delivery-wiz/pkg/middleware"
)

var (
	testAdmin = domain.Session{
		Token:    "admin-token",
		Identity: domain.Identity{ID: "a1", Email: "admin@loja.com", Name: "Loja Central", RoleName: "Administrator"},
	}
	testUser = domain.Session{
		Token:    "user-token",
		Identity: domain.Identity{ID: "u1", Email: "loja@loja.com", Name: "Loja Norte", RoleName: "User", Collection: "pedidos_norte"},
	}
)

func withSession(r *http.Request, session domain.Session) *http.Request {
	return r.WithContext(middleware.WithSession(r.Context(), &session))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

type formFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		if file.contentType != "" {
			header.Set("Content-Type", file.contentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// pngHeader é o suficiente para http.DetectContentType reconhecer um PNG
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
