package supabasedomain

import "time"

// ErrorResponse cobre os formatos de erro do GoTrue, PostgREST e Storage
type ErrorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e *ErrorResponse) FirstMessage() string {
	for _, message := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if message != "" {
			return message
		}
	}
	return ""
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	// ExpiresAt é um timestamp Unix em segundos
	ExpiresAt int64 `json:"expires_at"`
	User      User  `json:"user"`
}

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
}

type AdminUsersPage struct {
	Users []User `json:"users"`
}

type AdminUserParams struct {
	Email        string         `json:"email"`
	Password     string         `json:"password"`
	EmailConfirm bool           `json:"email_confirm"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

type UserRole struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
