package directusdomain

// Envelope é o formato padrão das respostas da API do Directus
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ErrorResponse representa a estrutura de erro da API do Directus
type ErrorResponse struct {
	Errors []ErrorDetails `json:"errors"`
}

type ErrorDetails struct {
	Message    string `json:"message"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// FirstMessage retorna a mensagem do primeiro erro, como exibida ao usuário
func (e *ErrorResponse) FirstMessage() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Message
}

type AuthData struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// Expires é o tempo de vida do access token em milissegundos
	Expires int64 `json:"expires"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type File struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	FilenameDownload string `json:"filename_download"`
	Type             string `json:"type"`
}

// User é mantido como mapa porque os campos de perfil variam entre instalações
type User map[string]any
