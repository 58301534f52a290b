package supabaseclient

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
	supabasedomain "github.com/emanuelkel/dash-delivery-wiz/infrastructure/integrator/supabase/domain"
	"github.com/emanuelkel/dash-delivery-wiz/internal/config"
	"github.com/emanuelkel/dash-delivery-wiz/internal/domain"
)

const BackendName = "supabase"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrServiceRoleRequired = errors.New("operação exige SUPABASE_SERVICE_ROLE_KEY")

type Client interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabasedomain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*supabasedomain.User, error)

	Select(ctx context.Context, token string, table string, params url.Values) ([]map[string]any, error)
	Insert(ctx context.Context, token string, table string, row any) error
	Update(ctx context.Context, token string, table string, filter url.Values, patch any) error

	AdminListUsers(ctx context.Context) ([]supabasedomain.User, error)
	AdminCreateUser(ctx context.Context, params supabasedomain.AdminUserParams) (*supabasedomain.User, error)
	AdminDeleteUser(ctx context.Context, id string) error

	Upload(ctx context.Context, token string, bucket string, key string, file domain.ImageFile, upsert bool) error
	PublicURL(bucket string, key string) string

	// ServiceToken retorna a chave de serviço, ou erro se ela não foi configurada
	ServiceToken() (string, error)
}

type SupabaseClient struct {
	httpClient     *http.Client
	baseURL        string
	anonKey        string
	serviceRoleKey string
}

func NewClient(cfg config.Supabase, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SupabaseClient{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		anonKey:        cfg.AnonKey,
		serviceRoleKey: cfg.ServiceRoleKey,
	}
}

func (c *SupabaseClient) ServiceToken() (string, error) {
	if c.serviceRoleKey == "" {
		return "", ErrServiceRoleRequired
	}
	return c.serviceRoleKey, nil
}

type request struct {
	method      string
	path        []string
	query       url.Values
	token       string
	body        io.Reader
	contentType string
	headers     map[string]string
}

func jsonBody(payload any) (io.Reader, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao codificar o corpo da requisição")
	}
	return bytes.NewReader(data), nil
}

func (c *SupabaseClient) do(ctx context.Context, req request, out any) error {
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

	token := req.token
	if token == "" {
		token = c.anonKey
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	for key, value := range req.headers {
		httpReq.Header.Set(key, value)
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
	var errResp supabasedomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.FirstMessage()
}
