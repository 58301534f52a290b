package directusclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator"
	directusdomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/directus/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

const BackendName = "directus"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	Login(ctx context.Context, email, password string) (*directusdomain.AuthData, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, token string, fields []string) (directusdomain.User, error)
	UpdateCurrentUser(ctx context.Context, token string, patch map[string]any) error
	ListUsers(ctx context.Context, token string, fields []string) ([]directusdomain.User, error)
	CreateUser(ctx context.Context, token string, payload map[string]any) (directusdomain.User, error)
	DeleteUser(ctx context.Context, token string, id string) error
	ListItems(ctx context.Context, token string, collection string, params url.Values) ([]map[string]any, error)
	ListRoles(ctx context.Context, token string, name string) ([]directusdomain.Role, error)
	UploadFile(ctx context.Context, token string, title string, file domain.ImageFile) (*directusdomain.File, error)
	AssetURL(id string) string
}

type DirectusClient struct {
	httpClient *http.Client
	baseURL    string
	// staticToken é usado quando a chamada não carrega a sessão de um usuário
	staticToken string
}

func NewClient(cfg config.Directus, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &DirectusClient{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.URL, "/"),
		staticToken: cfg.StaticToken,
	}
}

type request struct {
	method      string
	path        []string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
	// anonymous não envia credencial, nem mesmo o token estático
	anonymous bool
}

func jsonBody(payload any) (io.Reader, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao codificar o corpo da requisição")
	}
	return bytes.NewReader(data), nil
}

func (c *DirectusClient) do(ctx context.Context, req request, out any) error {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint = endpoint.JoinPath(req.path...)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), req.body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	token := req.token
	if token == "" {
		token = c.staticToken
	}
	if token != "" && !req.anonymous {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return integrator.NewBackendError(BackendName, resp.StatusCode, errorMessage(body))
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

func errorMessage(body []byte) string {
	var errResp directusdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.FirstMessage()
}
